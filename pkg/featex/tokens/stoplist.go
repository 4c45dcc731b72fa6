package tokens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// stoplistFile is the YAML schema of a stopword list file.
type stoplistFile struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopword terms from a YAML file of the form:
//
//	terms:
//	  - the
//	  - of
func LoadStoplist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stoplist %s: %v", internalerr.ErrResourceLoad, path, err)
	}

	var sl stoplistFile
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%w: stoplist %s: %v", internalerr.ErrResourceLoad, path, err)
	}

	return sl.Terms, nil
}
