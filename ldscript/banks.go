package ldscript

// BankTag suffixes a logical section name to select one of three parallel
// bank images sharing the same address range. A translation unit opts into
// an image by naming its sections with the matching suffix; the untagged
// name is the active primary image.
type BankTag string

const (
	TagPrimary BankTag = ""
	TagShadow  BankTag = "!"
	TagMirror  BankTag = "%"
)

// bankTags is the full tag set in emission order.
var bankTags = [...]BankTag{TagPrimary, TagShadow, TagMirror}

// overlayTags are the non-primary tags. Bands for these collect input
// sections but never define symbols.
var overlayTags = [...]BankTag{TagShadow, TagMirror}

// section returns the tagged variant of a logical section name.
func (t BankTag) section(name string) string {
	return name + string(t)
}
