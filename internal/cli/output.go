// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-gausshare.
//
// go-gausshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-gausshare/pkg/bundle"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintBundle prints a share bundle
func (p *Printer) PrintBundle(b *bundle.Bundle) error {
	switch p.format {
	case OutputFormatJSON:
		data, err := b.JSON()
		if err != nil {
			return err
		}
		_, err = p.writer.Write(data)
		return err
	case OutputFormatYAML:
		data, err := b.YAML()
		if err != nil {
			return err
		}
		_, err = p.writer.Write(data)
		return err
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Share set:  %s\n", b.ID)
		fmt.Fprintf(p.writer, "Prime:      %s\n", b.Prime)
		fmt.Fprintf(p.writer, "Threshold:  %d of %d\n", b.Threshold, b.Total)
		fmt.Fprintln(p.writer, "Shares:")
		for _, entry := range b.Shares {
			fmt.Fprintf(p.writer, "  %3d: %s\n", entry.Index, entry.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintSecret prints a recovered secret
func (p *Printer) PrintSecret(decimal string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"secret": decimal,
		})
	case OutputFormatYAML:
		return p.printYAML(map[string]interface{}{
			"secret": decimal,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, decimal)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintMap prints a generic key/value result
func (p *Printer) PrintMap(result map[string]interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(result)
	case OutputFormatYAML:
		return p.printYAML(result)
	case OutputFormatText:
		if v, ok := result["prime"]; ok {
			fmt.Fprintln(p.writer, v)
		}
		if v, ok := result["is_prime"]; ok {
			fmt.Fprintf(p.writer, "%v\n", v)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	case OutputFormatYAML:
		return p.printYAML(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		_, werr := fmt.Fprintf(p.writer, "Error: %v\n", err)
		return werr
	}
}

func (p *Printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.writer.Write(data)
	return err
}
