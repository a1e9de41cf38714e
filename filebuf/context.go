package filebuf

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Context owns the temporary files of one build step. Create one at the
// start of the step and Close it at the end; every temp file allocated
// through it is removed on Close.
type Context struct {
	dir  string
	next int
}

// NewContext allocates a fresh temp directory for one build step.
func NewContext() (*Context, error) {
	dir, err := os.MkdirTemp("", "wswantool-")
	if err != nil {
		return nil, err
	}
	Logger().Debug("created build context", zap.String("dir", dir))
	return &Context{dir: dir}, nil
}

// TempFile reserves a new file path inside the context directory. The file
// is not created; callers write it themselves.
func (c *Context) TempFile(stem string) (string, error) {
	if c.dir == "" {
		return "", os.ErrClosed
	}
	c.next++
	return filepath.Join(c.dir, fmt.Sprintf("%s-%04d", stem, c.next)), nil
}

// Dir returns the context's temp directory.
func (c *Context) Dir() string {
	return c.dir
}

// Close removes the context directory and everything in it.
func (c *Context) Close() error {
	if c.dir == "" {
		return nil
	}
	dir := c.dir
	c.dir = ""
	Logger().Debug("dropped build context", zap.String("dir", dir))
	return os.RemoveAll(dir)
}
