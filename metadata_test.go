package phonenumber

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

const territoryDoc = `<?xml version="1.0" encoding="UTF-8"?>
<phoneNumberMetadata>
  <territories>
    <territory id="NZ" countryCode="64" internationalPrefix="00"
               nationalPrefix="0" mobileNumberPortableRegion="true"
               nationalPrefixFormattingRule="0$FG">
      <references>
        <sourceUrl>http://example.com/plan</sourceUrl>
      </references>
      <availableFormats>
        <numberFormat pattern="(\d)(\d{3})(\d{4})">
          <leadingDigits>[3-79]</leadingDigits>
          <format>$1-$2 $3</format>
          <intlFormat>$1 $2 $3</intlFormat>
        </numberFormat>
        <numberFormat pattern="(\d{2})(\d{3})(\d{3,5})">
          <leadingDigits>2</leadingDigits>
          <format>$1 $2 $3</format>
          <intlFormat>NA</intlFormat>
        </numberFormat>
      </availableFormats>
      <generalDesc>
        <nationalNumberPattern>
          [2-9]\d{7,9}
        </nationalNumberPattern>
        <possibleLengths national="8,[9-10]" localOnly="7"/>
      </generalDesc>
      <fixedLine>
        <nationalNumberPattern>(?:3[2-79]|[49][2-9]|6[235-9]|7[2-57-9])\d{6}</nationalNumberPattern>
        <possibleLengths national="8" localOnly="7"/>
        <exampleNumber>32345678</exampleNumber>
      </fixedLine>
    </territory>
    <territory id="US" countryCode="1" internationalPrefix="011"
               nationalPrefix="1" mainCountryForCode="true">
      <generalDesc>
        <nationalNumberPattern>[2-9]\d{9}</nationalNumberPattern>
        <possibleLengths national="10"/>
      </generalDesc>
    </territory>
  </territories>
</phoneNumberMetadata>`

func TestDecodeXML(t *testing.T) {
	records, err := DecodeXML(strings.NewReader(territoryDoc))
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("decoded %d territories, want 2", len(records))
	}

	nz := records[0]
	if nz.ID != "NZ" || nz.CountryCode != 64 {
		t.Fatalf("first territory = %s/%d, want NZ/64", nz.ID, nz.CountryCode)
	}
	if nz.NationalPrefix != "0" || !nz.MobileNumberPortable {
		t.Fatalf("NZ prefix = %q portable = %v", nz.NationalPrefix, nz.MobileNumberPortable)
	}

	if nz.General == nil {
		t.Fatal("missing general descriptor")
	}
	if nz.General.Pattern != `[2-9]\d{7,9}` {
		t.Fatalf("general pattern = %q", nz.General.Pattern)
	}
	wantLengths := []uint16{8, 9, 10}
	if len(nz.General.Lengths) != len(wantLengths) {
		t.Fatalf("general lengths = %v, want %v", nz.General.Lengths, wantLengths)
	}
	for i, l := range wantLengths {
		if nz.General.Lengths[i] != l {
			t.Fatalf("general lengths = %v, want %v", nz.General.Lengths, wantLengths)
		}
	}
	if len(nz.General.LocalLengths) != 1 || nz.General.LocalLengths[0] != 7 {
		t.Fatalf("general local lengths = %v, want [7]", nz.General.LocalLengths)
	}
	if nz.FixedLine == nil || nz.FixedLine.Example != "32345678" {
		t.Fatal("fixed line descriptor not decoded")
	}

	if len(nz.Formats) != 2 {
		t.Fatalf("decoded %d formats, want 2", len(nz.Formats))
	}
	first := nz.Formats[0]
	if first.Pattern != `(\d)(\d{3})(\d{4})` || first.Format != `$1-$2 $3` {
		t.Fatalf("format = %q / %q", first.Pattern, first.Format)
	}
	if len(first.LeadingDigits) != 1 || first.LeadingDigits[0] != `[3-79]` {
		t.Fatalf("leading digits = %v", first.LeadingDigits)
	}
	// The territory-level formatting rule is the per-format default.
	if first.NationalPrefixRule != `0$FG` {
		t.Fatalf("national prefix rule = %q", first.NationalPrefixRule)
	}

	// "NA" suppresses the international variant of a format.
	if len(nz.InternationalFormats) != 1 || nz.InternationalFormats[0].Format != `$1 $2 $3` {
		t.Fatalf("international formats = %v", nz.InternationalFormats)
	}

	if !records[1].MainCountryForCode {
		t.Fatal("US should be the main country for its code")
	}
}

func TestDecodeXMLUnhandledElement(t *testing.T) {
	doc := `<phoneNumberMetadata><territories>
		<territory id="XX" countryCode="1"><bogus/></territory>
	</territories></phoneNumberMetadata>`

	_, err := DecodeXML(strings.NewReader(doc))
	var unhandled *UnhandledElementError
	if !errors.As(err, &unhandled) {
		t.Fatalf("error = %v, want UnhandledElementError", err)
	}
	if unhandled.Name != "bogus" {
		t.Fatalf("unhandled element = %q, want %q", unhandled.Name, "bogus")
	}
}

func TestDecodeXMLStrayText(t *testing.T) {
	doc := `<phoneNumberMetadata>loose text<territories/></phoneNumberMetadata>`

	_, err := DecodeXML(strings.NewReader(doc))
	var unhandled *UnhandledEventError
	if !errors.As(err, &unhandled) {
		t.Fatalf("error = %v, want UnhandledEventError", err)
	}
}

func TestLoadXMLParse(t *testing.T) {
	db, err := LoadXML(strings.NewReader(territoryDoc))
	if err != nil {
		t.Fatalf("LoadXML: %v", err)
	}

	number, err := ParseWith(db, NZ, "03-234 5678")
	if err != nil {
		t.Fatalf("ParseWith: %v", err)
	}
	if got := number.National().Value(); got != 32345678 {
		t.Fatalf("national = %d, want 32345678", got)
	}
	if got := FormatWith(db, number, National); got != "03-234 5678" {
		t.Fatalf("National = %q, want %q", got, "03-234 5678")
	}
}

func TestImageRoundTrip(t *testing.T) {
	records, err := DecodeXML(strings.NewReader(territoryDoc))
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeImage(&buf, records); err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}

	decoded, err := DecodeImage(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(records))
	}
	if decoded[0].ID != "NZ" || decoded[0].General.Pattern != records[0].General.Pattern {
		t.Fatalf("round trip lost data: %+v", decoded[0])
	}
	if len(decoded[0].Formats) != 2 || decoded[0].Formats[0].NationalPrefixRule != `0$FG` {
		t.Fatalf("round trip lost formats: %+v", decoded[0].Formats)
	}
}

func TestDecodeImageVersionMismatch(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(99); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := enc.Encode([]RawMetadata{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := DecodeImage(bytes.NewReader(buf.Bytes())); err == nil {
		t.Fatal("expected a version error")
	}
}

func TestLoadFile(t *testing.T) {
	records, err := DecodeXML(strings.NewReader(territoryDoc))
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	dir := t.TempDir()

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return path
	}

	jsonData, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	yamlData, err := yaml.Marshal(records)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var image bytes.Buffer
	if err := EncodeImage(&image, records); err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}

	paths := []string{
		write("metadata.xml", []byte(territoryDoc)),
		write("metadata.json", jsonData),
		write("metadata.yml", yamlData),
		write("metadata.bin", image.Bytes()),
	}

	for _, path := range paths {
		db, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", filepath.Base(path), err)
		}
		if db.ByID(NZ) == nil {
			t.Fatalf("LoadFile(%s): NZ missing", filepath.Base(path))
		}
	}
}

func TestNewDatabaseRejectsBrokenPattern(t *testing.T) {
	records := []RawMetadata{{
		ID:          "XX",
		CountryCode: 998,
		General:     &RawDescriptor{Pattern: `(`, Lengths: []uint16{5}},
	}}

	if _, err := NewDatabase(records); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestDatabaseByCode(t *testing.T) {
	db := DefaultDatabase()

	all := db.ByCode(1)
	if len(all) < 2 {
		t.Fatalf("code 1 has %d regions", len(all))
	}
	// The main country comes first.
	if got := all[0].ID(); got != US {
		t.Fatalf("main country for 1 = %q, want US", got)
	}

	regions := db.Regions(44)
	if len(regions) != 1 || regions[0] != GB {
		t.Fatalf("Regions(44) = %v, want [GB]", regions)
	}
	if db.ByCode(999) != nil {
		t.Fatal("unexpected metadata for code 999")
	}

	// The shared 001 region stays out of the id index; each entity is
	// still reachable through its calling code.
	if db.ByID(RegionNonGeographic) != nil {
		t.Fatal("unexpected metadata for region 001")
	}
	for _, code := range []uint16{800, 979} {
		if got := len(db.ByCode(code)); got != 1 {
			t.Fatalf("code %d has %d records, want 1", code, got)
		}
	}
}

func TestMetadataAccessors(t *testing.T) {
	db := DefaultDatabase()

	nz := db.ByID(NZ)
	if nz == nil {
		t.Fatal("NZ missing from the bundled data")
	}
	if nz.CountryCode() != 64 || nz.NationalPrefix() != "0" {
		t.Fatalf("NZ = %d/%q", nz.CountryCode(), nz.NationalPrefix())
	}
	if nz.General().PossibleLocalLengths()[0] != 7 {
		t.Fatalf("NZ local lengths = %v", nz.General().PossibleLocalLengths())
	}

	// Without explicit international formats the national ones serve.
	gb := db.ByID(GB)
	if len(gb.InternationalFormats()) != len(gb.Formats()) {
		t.Fatalf("GB international formats = %d, want %d", len(gb.InternationalFormats()), len(gb.Formats()))
	}
	us := db.ByID(US)
	if len(us.InternationalFormats()) == len(us.Formats()) {
		t.Fatal("US should keep its own international formats")
	}
}
