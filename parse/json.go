package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/datapivot/pivot/ir"
)

// parseJSON decodes strict JSON through the decoder's token stream so
// that object key order survives into the canonical node.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: data after top-level value", ErrParse)
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t)
		}
	case string:
		return ir.FromString(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q: %v", ErrParse, t, err)
		}
		return ir.FromNumber(f), nil
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	obj := ir.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrParse, keyTok)
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return obj, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	arr := ir.FromSlice(nil)
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return arr, nil
}
