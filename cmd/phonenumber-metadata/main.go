// Command phonenumber-metadata compiles libphonenumber territory data into
// the forms the phonenumber package consumes: a generated Go source file, a
// compact binary image, or a JSON/YAML manifest.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	phonenumber "github.com/goliatone/go-phonenumber"
)

type generatorConfig struct {
	in      string
	out     string
	pkg     string
	output  string
	regions []string
	verbose bool
}

type regionFlag struct {
	items []string
}

func (f *regionFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *regionFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "phonenumber-metadata: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var regions regionFlag

	flag.StringVar(&cfg.in, "in", "", "path to the metadata source (.xml, .json, .yml or a binary image)")
	flag.StringVar(&cfg.out, "out", "metadata_data.go", "path to the generated file")
	flag.StringVar(&cfg.pkg, "pkg", "phonenumber", "package name for generated Go source")
	flag.StringVar(&cfg.output, "format", "go", "output format: go, image, json or yaml")
	flag.Var(&regions, "region", "region to include (repeat or comma separate; default all)")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	flag.Parse()

	if cfg.in == "" {
		return generatorConfig{}, errors.New("missing -in metadata source")
	}

	switch cfg.output {
	case "go", "image", "json", "yaml":
	default:
		return generatorConfig{}, fmt.Errorf("unknown output format %q", cfg.output)
	}

	cfg.regions = regions.items
	return cfg, nil
}

func run(cfg generatorConfig) error {
	log := logrus.New()
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	records, err := loadRecords(cfg.in)
	if err != nil {
		return err
	}
	log.WithField("regions", len(records)).Debug("loaded metadata source")

	if len(cfg.regions) > 0 {
		records = filterRecords(records, cfg.regions)
		if len(records) == 0 {
			return errors.New("no regions left after filtering")
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	// Building a database compiles every pattern, so broken metadata fails
	// here instead of in whoever consumes the output.
	if _, err := phonenumber.NewDatabase(records); err != nil {
		return err
	}

	var data []byte
	switch cfg.output {
	case "go":
		data, err = renderSource(cfg.pkg, records)
	case "image":
		var buf bytes.Buffer
		err = phonenumber.EncodeImage(&buf, records)
		data = buf.Bytes()
	case "json":
		data, err = json.MarshalIndent(records, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(records)
	}
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.out, data, 0o644); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"out":     cfg.out,
		"format":  cfg.output,
		"regions": len(records),
	}).Info("metadata written")
	return nil
}

func loadRecords(path string) ([]phonenumber.RawMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []phonenumber.RawMetadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		records, err = phonenumber.DecodeXML(bytes.NewReader(data))
	case ".json":
		err = json.Unmarshal(data, &records)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &records)
	default:
		records, err = phonenumber.DecodeImage(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return records, nil
}

func filterRecords(records []phonenumber.RawMetadata, regions []string) []phonenumber.RawMetadata {
	keep := make(map[string]bool, len(regions))
	for _, r := range regions {
		keep[r] = true
	}

	var out []phonenumber.RawMetadata
	for _, record := range records {
		if keep[record.ID] {
			out = append(out, record)
		}
	}
	return out
}

func renderSource(pkg string, records []phonenumber.RawMetadata) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by phonenumber-metadata. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("// bundledMetadata returns the region records compiled into the package.\n")
	buf.WriteString("func bundledMetadata() []RawMetadata {\n")
	buf.WriteString("\treturn []RawMetadata{\n")
	for i := range records {
		writeRecord(&buf, &records[i])
	}
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeRecord(buf *bytes.Buffer, record *phonenumber.RawMetadata) {
	buf.WriteString("\t\t{\n")
	fmt.Fprintf(buf, "\t\t\tID: %q,\n", record.ID)
	fmt.Fprintf(buf, "\t\t\tCountryCode: %d,\n", record.CountryCode)
	if record.MainCountryForCode {
		buf.WriteString("\t\t\tMainCountryForCode: true,\n")
	}
	writeString(buf, "InternationalPrefix", record.InternationalPrefix)
	writeString(buf, "PreferredInternationalPrefix", record.PreferredInternationalPrefix)
	writeString(buf, "NationalPrefix", record.NationalPrefix)
	writeString(buf, "PreferredExtensionPrefix", record.PreferredExtensionPrefix)
	writeString(buf, "NationalPrefixForParsing", record.NationalPrefixForParsing)
	writeString(buf, "NationalPrefixTransformRule", record.NationalPrefixTransformRule)
	writeString(buf, "LeadingDigits", record.LeadingDigits)
	if record.MobileNumberPortable {
		buf.WriteString("\t\t\tMobileNumberPortable: true,\n")
	}

	writeDescriptor(buf, "General", record.General)
	writeDescriptor(buf, "FixedLine", record.FixedLine)
	writeDescriptor(buf, "Mobile", record.Mobile)
	writeDescriptor(buf, "TollFree", record.TollFree)
	writeDescriptor(buf, "PremiumRate", record.PremiumRate)
	writeDescriptor(buf, "SharedCost", record.SharedCost)
	writeDescriptor(buf, "PersonalNumber", record.PersonalNumber)
	writeDescriptor(buf, "Voip", record.Voip)
	writeDescriptor(buf, "Pager", record.Pager)
	writeDescriptor(buf, "Uan", record.Uan)
	writeDescriptor(buf, "Emergency", record.Emergency)
	writeDescriptor(buf, "Voicemail", record.Voicemail)
	writeDescriptor(buf, "ShortCode", record.ShortCode)
	writeDescriptor(buf, "StandardRate", record.StandardRate)
	writeDescriptor(buf, "Carrier", record.Carrier)
	writeDescriptor(buf, "NoInternational", record.NoInternational)

	writeFormats(buf, "Formats", record.Formats)
	writeFormats(buf, "InternationalFormats", record.InternationalFormats)
	buf.WriteString("\t\t},\n")
}

func writeString(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: %q,\n", name, value)
}

func writeDescriptor(buf *bytes.Buffer, name string, desc *phonenumber.RawDescriptor) {
	if desc == nil {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: &RawDescriptor{Pattern: %q", name, desc.Pattern)
	writeLengths(buf, "Lengths", desc.Lengths)
	writeLengths(buf, "LocalLengths", desc.LocalLengths)
	if desc.Example != "" {
		fmt.Fprintf(buf, ", Example: %q", desc.Example)
	}
	buf.WriteString("},\n")
}

func writeLengths(buf *bytes.Buffer, name string, lengths []uint16) {
	if len(lengths) == 0 {
		return
	}
	fmt.Fprintf(buf, ", %s: []uint16{", name)
	for i, l := range lengths {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%d", l)
	}
	buf.WriteString("}")
}

func writeFormats(buf *bytes.Buffer, name string, formats []phonenumber.RawFormat) {
	if len(formats) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: []RawFormat{\n", name)
	for _, f := range formats {
		fmt.Fprintf(buf, "\t\t\t\t{Pattern: %q, Format: %q", f.Pattern, f.Format)
		if len(f.LeadingDigits) > 0 {
			buf.WriteString(", LeadingDigits: []string{")
			for i, ld := range f.LeadingDigits {
				if i > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(buf, "%q", ld)
			}
			buf.WriteString("}")
		}
		if f.NationalPrefixRule != "" {
			fmt.Fprintf(buf, ", NationalPrefixRule: %q", f.NationalPrefixRule)
		}
		if f.NationalPrefixOptional {
			buf.WriteString(", NationalPrefixOptional: true")
		}
		if f.DomesticCarrier != "" {
			fmt.Fprintf(buf, ", DomesticCarrier: %q", f.DomesticCarrier)
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("\t\t\t},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
