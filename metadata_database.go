package phonenumber

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Database holds the metadata of a set of regions, indexed by region and by
// calling code, with a shared cache for the compiled patterns.
type Database struct {
	cache  *RegexCache
	byID   map[Region]*Metadata
	byCode map[uint16][]*Metadata
}

// DatabaseOption adjusts how a Database is built.
type DatabaseOption func(*databaseConfig) error

type databaseConfig struct {
	cacheSize int
	unchecked bool
}

// WithCacheSize bounds the database's compiled pattern cache.
func WithCacheSize(size int) DatabaseOption {
	return func(c *databaseConfig) error {
		if size <= 0 {
			return errors.Errorf("phonenumber: cache size must be positive, got %d", size)
		}
		c.cacheSize = size
		return nil
	}
}

// withUncheckedPatterns skips the eager compile pass. Only the bundled data
// uses it, that data is verified when generated.
func withUncheckedPatterns() DatabaseOption {
	return func(c *databaseConfig) error {
		c.unchecked = true
		return nil
	}
}

// NewDatabase builds a database from raw records. Every pattern is compiled
// up front so a broken record fails here rather than mid-parse.
func NewDatabase(records []RawMetadata, opts ...DatabaseOption) (*Database, error) {
	config := databaseConfig{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	cache, err := NewRegexCache(config.cacheSize)
	if err != nil {
		return nil, err
	}

	db := &Database{
		cache:  cache,
		byID:   make(map[Region]*Metadata, len(records)),
		byCode: make(map[uint16][]*Metadata),
	}

	for i := range records {
		meta := records[i].build(cache)

		if !config.unchecked {
			if err := checkPatterns(meta); err != nil {
				return nil, errors.Wrapf(err, "phonenumber: region %s", meta.id)
			}
		}

		// Every non-geographical entity shares the 001 region, so only
		// real regions go into the id index. Lookups for those entities
		// run by calling code.
		if meta.id != RegionNonGeographic {
			db.byID[meta.id] = meta
		}
		if meta.mainCountryForCode {
			db.byCode[meta.countryCode] = append([]*Metadata{meta}, db.byCode[meta.countryCode]...)
		} else {
			db.byCode[meta.countryCode] = append(db.byCode[meta.countryCode], meta)
		}
	}

	return db, nil
}

// LoadImage builds a database from a binary metadata image.
func LoadImage(r io.Reader, opts ...DatabaseOption) (*Database, error) {
	records, err := DecodeImage(r)
	if err != nil {
		return nil, errors.Wrap(err, "phonenumber: decoding metadata image")
	}
	return NewDatabase(records, opts...)
}

// LoadXML builds a database from a libphonenumber territory document.
func LoadXML(r io.Reader, opts ...DatabaseOption) (*Database, error) {
	records, err := DecodeXML(r)
	if err != nil {
		return nil, err
	}
	return NewDatabase(records, opts...)
}

// LoadFile builds a database from a metadata file, picking the decoder by
// extension: .xml, .json, .yml or .yaml, anything else is read as a binary
// image.
func LoadFile(path string, opts ...DatabaseOption) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "phonenumber: reading %s", path)
	}

	var records []RawMetadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		records, err = DecodeXML(bytes.NewReader(data))
	case ".json":
		err = json.Unmarshal(data, &records)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &records)
	default:
		records, err = DecodeImage(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "phonenumber: decoding %s", path)
	}

	return NewDatabase(records, opts...)
}

// ByID returns the metadata of a region, or nil when the database does not
// know it.
func (db *Database) ByID(region Region) *Metadata {
	return db.byID[region]
}

// ByCode returns the regions sharing a calling code, the main one first.
func (db *Database) ByCode(code uint16) []*Metadata {
	return db.byCode[code]
}

// Regions returns the identifiers of the regions sharing a calling code,
// the main one first.
func (db *Database) Regions(code uint16) []Region {
	all := db.byCode[code]
	if len(all) == 0 {
		return nil
	}
	out := make([]Region, len(all))
	for i, meta := range all {
		out[i] = meta.id
	}
	return out
}

// Len reports how many regions the database holds.
func (db *Database) Len() int {
	return len(db.byID)
}

// Cache exposes the database's pattern cache.
func (db *Database) Cache() *RegexCache {
	return db.cache
}

// checkPatterns compiles every pattern of the region so corrupt metadata is
// rejected at load time.
func checkPatterns(meta *Metadata) error {
	compile := func(name string, p CachedPattern) error {
		if p.IsZero() {
			return nil
		}
		if _, err := p.Regexp(); err != nil {
			return errors.Wrap(err, name)
		}
		return nil
	}

	if err := compile("general", meta.general.pattern); err != nil {
		return err
	}
	for _, t := range []NumberType{
		TypeFixedLine, TypeMobile, TypeTollFree, TypePremiumRate,
		TypeSharedCost, TypePersonalNumber, TypeVoip, TypePager,
		TypeUan, TypeEmergency, TypeVoicemail, TypeShortCode,
		TypeStandardRate, TypeCarrier, TypeNoInternational,
	} {
		desc := meta.descriptorFor(t)
		if desc == nil {
			continue
		}
		if err := compile(t.String(), desc.pattern); err != nil {
			return err
		}
	}

	if err := compile("international prefix", meta.internationalPrefix); err != nil {
		return err
	}
	if err := compile("national prefix for parsing", meta.nationalPrefixForParsing); err != nil {
		return err
	}
	if err := compile("leading digits", meta.leadingDigits); err != nil {
		return err
	}

	for _, formats := range [][]FormatRule{meta.formats, meta.internationalFormats} {
		for i := range formats {
			f := &formats[i]
			if err := compile("format", f.pattern); err != nil {
				return err
			}
			for _, ld := range f.leadingDigits {
				if err := compile("format leading digits", ld); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

var (
	defaultDB   *Database
	defaultOnce sync.Once
)

// DefaultDatabase returns the database built from the bundled metadata. It
// is built on first use and shared afterwards.
func DefaultDatabase() *Database {
	defaultOnce.Do(func() {
		db, err := NewDatabase(bundledMetadata(), withUncheckedPatterns())
		if err != nil {
			// Options cannot fail here and patterns are not checked.
			panic(err)
		}
		defaultDB = db
	})
	return defaultDB
}
