package settings

import "github.com/wondertools/wswantool/errors"

// CurrentVersion is the schema version written by this tool.
const CurrentVersion = 2

// renamedKeys maps the flat v1 key names onto their v2 namespaced forms.
var renamedKeys = map[string]string{
	"model":  "link.model",
	"output": "link.output",
	"target": "link.target",
}

// migrations[v] upgrades a document from version v to v+1.
var migrations = map[int]func(*document){
	1: func(d *document) {
		for old, now := range renamedKeys {
			if v, ok := d.Values[old]; ok {
				d.Values[now] = v
				delete(d.Values, old)
			}
		}
	},
}

// migrate upgrades doc in place to CurrentVersion. Documents from a newer
// tool are refused rather than guessed at.
func migrate(doc *document) error {
	if doc.Version == 0 {
		doc.Version = 1
	}
	if doc.Version > CurrentVersion {
		return errors.New(errors.PhaseConfig, errors.KindMigration).
			Detail("repository version %d is newer than supported version %d", doc.Version, CurrentVersion).
			Value(doc.Version).
			Build()
	}
	for doc.Version < CurrentVersion {
		step, ok := migrations[doc.Version]
		if !ok {
			return errors.New(errors.PhaseConfig, errors.KindMigration).
				Detail("no migration from version %d", doc.Version).
				Value(doc.Version).
				Build()
		}
		step(doc)
		doc.Version++
	}
	return nil
}
