// Package jsondom parses JSON documents into the domain value tree.
//
// It wraps the standard library tokenizer rather than a one-shot
// unmarshal because resolution needs three things json.Unmarshal
// throws away: the byte offset of every member name, the raw source
// text of every value, and document member order. Duplicate member
// names collapse last-wins, matching what an ordinary unmarshal into a
// map would produce.
package jsondom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
)

type parser struct {
	dec *json.Decoder
	src []byte
}

func newParser(data []byte) *parser {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return &parser{dec: dec, src: data}
}

// Parse parses data as a single JSON text and returns its root value.
// Trailing non-whitespace after the top-level value is an error.
func Parse(data []byte) (*domain.Value, error) {
	p := newParser(data)

	root, err := p.value(p.tokenStart(0, 0))
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	if tok, err := p.dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return nil, fmt.Errorf("parse json: unexpected %v after top-level value", tok)
	}
	return root, nil
}

// ParseDocument parses data and wraps the result together with a line
// index so member offsets can be reported as 1-based line numbers.
func ParseDocument(id, uri string, data []byte) (*domain.Document, error) {
	root, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &domain.Document{
		ID:    id,
		URI:   uri,
		Root:  root,
		Lines: domain.NewLineIndex(data),
	}, nil
}

// value reads the next value from the token stream. start is the byte
// offset of its first character, located by the caller before any
// token of the value has been consumed.
func (p *parser) value(start int64) (*domain.Value, error) {
	tok, err := p.dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := &domain.Value{Kind: domain.KindObject}
			if err := p.object(v); err != nil {
				return nil, err
			}
			v.Raw = string(p.src[start:p.dec.InputOffset()])
			return v, nil
		case '[':
			v := &domain.Value{Kind: domain.KindArray}
			if err := p.array(v); err != nil {
				return nil, err
			}
			v.Raw = string(p.src[start:p.dec.InputOffset()])
			return v, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return &domain.Value{Kind: domain.KindString, Raw: p.rawSince(start)}, nil
	case json.Number:
		return &domain.Value{Kind: domain.KindNumber, Raw: p.rawSince(start)}, nil
	case bool:
		return &domain.Value{Kind: domain.KindBoolean, Raw: p.rawSince(start)}, nil
	case nil:
		return &domain.Value{Kind: domain.KindNull, Raw: p.rawSince(start)}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// object reads members until the closing brace. The '{' delimiter has
// already been consumed.
func (p *parser) object(obj *domain.Value) error {
	for p.dec.More() {
		nameStart := p.tokenStart(p.dec.InputOffset(), ',')

		tok, err := p.dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected member name token %v", tok)
		}

		val, err := p.value(p.tokenStart(p.dec.InputOffset(), ':'))
		if err != nil {
			return err
		}

		obj.AddProperty(domain.Property{
			Name:       name,
			Value:      val,
			NameOffset: nameStart,
		})
	}

	_, err := p.dec.Token()
	return err
}

// array reads elements until the closing bracket. The '[' delimiter
// has already been consumed.
func (p *parser) array(arr *domain.Value) error {
	for p.dec.More() {
		val, err := p.value(p.tokenStart(p.dec.InputOffset(), ','))
		if err != nil {
			return err
		}
		arr.Elements = append(arr.Elements, val)
	}

	_, err := p.dec.Token()
	return err
}

// tokenStart scans forward from a decoder offset to the first byte of
// the next token. Between tokens the source holds only whitespace and
// at most one structural separator, which the decoder never surfaces
// as a token.
func (p *parser) tokenStart(from int64, sep byte) int64 {
	i := from
	for i < int64(len(p.src)) {
		switch c := p.src[i]; c {
		case ' ', '\t', '\n', '\r', sep:
			i++
		default:
			return i
		}
	}
	return i
}

func (p *parser) rawSince(start int64) string {
	return string(p.src[start:p.dec.InputOffset()])
}
