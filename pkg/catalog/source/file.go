package source

import (
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/pkg/errors"
)

// FileSource reads a catalog JSON file. An empty Path reads the bundled catalog.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Instances() ([]*catalog.Instance, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if s.Path == "" {
		logger.Debug("Reading the bundled catalog")
		c, err = catalog.Bundled()
	} else {
		logger.Debugf("Reading catalog %s", s.Path)
		c, err = catalog.LoadFile(s.Path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read catalog file")
	}
	return c.Instances(), nil
}
