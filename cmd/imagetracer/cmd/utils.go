package cmd

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// unmarshalYAMLFile decodes the YAML document at path into out.
func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

// marshalYAMLFile writes v to path as a YAML document.
func marshalYAMLFile(path string, v interface{}) error {
	buf, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}
