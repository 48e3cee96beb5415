// Package migrate rewrites decimal fields of stored JSON documents into the
// canonical storage form of a chosen precision.
package migrate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	shopspring "github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	decimal "github.com/CryptoKage2306/cosmwasm-custom-decimal"
)

// Codec converts one stored decimal to its canonical form.
// lost is true if the canonical form has a smaller value than s.
type Codec func(s string) (canonical string, lost bool, err error)

// StorageCodec returns the codec that reads a value with [decimal.ParseStorage]
// at precision P and writes it back with [decimal.Decimal.Storage].
func StorageCodec[P decimal.Places]() Codec {
	return func(s string) (string, bool, error) {
		d, err := decimal.ParseStorage[P](s)
		if err != nil {
			return "", false, err
		}
		canonical := d.Storage()
		return canonical, lostDigits(s, canonical), nil
	}
}

// lostDigits compares both forms numerically, so leading zeros and
// trailing fractional zeros do not count as lost.
func lostDigits(s, canonical string) bool {
	if s == canonical {
		return false
	}
	before, err := shopspring.NewFromString(s)
	if err != nil {
		return false
	}
	after, err := shopspring.NewFromString(canonical)
	if err != nil {
		return false
	}
	return !before.Equal(after)
}

// Change describes one rewritten field.
type Change struct {
	Path   string // for example "orders[1].price"
	From   string
	To     string
	Lost   bool
	Number bool // From was a JSON number
}

// Normalizer rewrites every field with one of the configured names, at any
// depth of the document.
// Fields holding JSON strings or numbers are rewritten to JSON strings,
// null fields are left untouched and fields of any other type are an error.
// Numbers in exponent form are expanded before decoding.
//
// A Normalizer reuses its parser and arena between calls, so it is not safe
// for concurrent use.
type Normalizer struct {
	fields map[string]struct{}
	codec  Codec
	logger log.FieldLogger

	parser fastjson.Parser
	arena  fastjson.Arena
}

// NewNormalizer returns a Normalizer for the given field names.
func NewNormalizer(codec Codec, fields ...string) *Normalizer {
	n := &Normalizer{
		fields: make(map[string]struct{}, len(fields)),
		codec:  codec,
		logger: log.StandardLogger(),
	}
	for _, f := range fields {
		n.fields[f] = struct{}{}
	}
	return n
}

// WithLogger sets the logger that receives a warning for every field that
// lost digits.
func (n *Normalizer) WithLogger(logger log.FieldLogger) *Normalizer {
	n.logger = logger
	return n
}

// Normalize rewrites the document in data and returns the new document
// along with the changed fields.
// Fields that are already canonical are not reported.
func (n *Normalizer) Normalize(data []byte) ([]byte, []Change, error) {
	v, err := n.parser.ParseBytes(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing document")
	}
	n.arena.Reset()

	var changes []Change
	if err := n.walk(v, "", &changes); err != nil {
		return nil, nil, err
	}

	for _, c := range changes {
		if !c.Lost {
			continue
		}
		n.logger.WithFields(log.Fields{
			"path": c.Path,
			"from": c.From,
			"to":   c.To,
		}).Warn("decimal field lost digits")
	}
	return v.MarshalTo(nil), changes, nil
}

func (n *Normalizer) walk(v *fastjson.Value, path string, changes *[]Change) error {
	switch v.Type() {
	case fastjson.TypeArray:
		items, _ := v.Array()
		for i, item := range items {
			if err := n.walk(item, fmt.Sprintf("%s[%d]", path, i), changes); err != nil {
				return err
			}
		}

	case fastjson.TypeObject:
		o, _ := v.Object()

		var (
			keys []string
			err  error
		)
		o.Visit(func(key []byte, item *fastjson.Value) {
			if err != nil {
				return
			}
			k := string(key)
			if _, ok := n.fields[k]; ok && item.Type() != fastjson.TypeNull {
				keys = append(keys, k)
				return
			}
			err = n.walk(item, join(path, k), changes)
		})
		if err != nil {
			return err
		}

		// Set is not called while visiting o
		for _, k := range keys {
			item := o.Get(k)
			c, err := n.rewrite(item, join(path, k))
			if err != nil {
				return err
			}
			o.Set(k, n.arena.NewString(c.To))
			if c.From != c.To || c.Number {
				*changes = append(*changes, c)
			}
		}
	}
	return nil
}

func (n *Normalizer) rewrite(v *fastjson.Value, path string) (Change, error) {
	var s string
	switch v.Type() {
	case fastjson.TypeString:
		s = string(v.GetStringBytes())
	case fastjson.TypeNumber:
		s = v.String()
		if strings.ContainsAny(s, "eE") {
			d, err := shopspring.NewFromString(s)
			if err != nil {
				return Change{}, errors.Wrapf(err, "field %s", path)
			}
			s = d.String()
		}
	default:
		return Change{}, errors.Errorf("field %s: expected a decimal string, got %s", path, v.Type())
	}

	canonical, lost, err := n.codec(s)
	if err != nil {
		return Change{}, errors.Wrapf(err, "field %s", path)
	}
	return Change{Path: path, From: s, To: canonical, Lost: lost, Number: v.Type() == fastjson.TypeNumber}, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
