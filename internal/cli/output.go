package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// renderJSON writes the result as indented JSON
func renderJSON(out io.Writer, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// renderYAML writes the result as YAML
func renderYAML(out io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

// renderStructured dispatches on the requested output format
func renderStructured(out io.Writer, format string, result any) (bool, error) {
	switch format {
	case "json":
		return true, renderJSON(out, result)
	case "yaml":
		return true, renderYAML(out, result)
	case "", "text":
		return false, nil
	}
	return false, fmt.Errorf("invalid output format %q (valid: text, json, yaml)", format)
}
