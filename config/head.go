package config

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

var supportedHeadTags = map[string]bool{
	"script": true,
	"link":   true,
	"meta":   true,
}

// IsSupportedHeadTag reports whether the renderer accepts tag in the page head.
func IsSupportedHeadTag(tag string) bool {
	return supportedHeadTags[tag]
}

// UnmarshalYAML accepts the mapping form
//
//	{tag: link, attributes: {rel: icon, href: /favicon.ico}}
//
// and the tuple form
//
//	[script, {src: "https://...", async: true}, "inline body"]
func (t *HeadTag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var seq []interface{}
	if err := unmarshal(&seq); err == nil {
		return t.fromTuple(seq)
	}

	type plain HeadTag
	return unmarshal((*plain)(t))
}

func (t *HeadTag) fromTuple(seq []interface{}) error {
	if len(seq) == 0 || len(seq) > 3 {
		return errors.Errorf("head tag: expected 1 to 3 elements, got %d", len(seq))
	}

	name, ok := seq[0].(string)
	if !ok {
		return errors.Errorf("head tag: element 0 must be a tag name, got %T", seq[0])
	}
	*t = HeadTag{Tag: name}

	if len(seq) > 1 && seq[1] != nil {
		attrs, ok := seq[1].(map[interface{}]interface{})
		if !ok {
			return errors.Errorf("head tag %s: element 1 must be an attribute mapping, got %T", name, seq[1])
		}
		for k, v := range attrs {
			key := fmt.Sprint(k)
			if key == "async" {
				async, err := asBool(v)
				if err != nil {
					return errors.Wrapf(err, "head tag %s: async", name)
				}
				t.Async = async
				continue
			}
			if t.Attributes == nil {
				t.Attributes = make(map[string]string, len(attrs))
			}
			if v == nil {
				// A bare key is a boolean attribute such as defer.
				t.Attributes[key] = ""
				continue
			}
			t.Attributes[key] = fmt.Sprint(v)
		}
	}

	if len(seq) > 2 && seq[2] != nil {
		content, ok := seq[2].(string)
		if !ok {
			return errors.Errorf("head tag %s: element 2 must be a string, got %T", name, seq[2])
		}
		t.Content = content
	}

	return nil
}

func asBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	default:
		return false, errors.Errorf("expected a boolean, got %T", v)
	}
}

func (t HeadTag) clone() HeadTag {
	c := t
	if t.Attributes != nil {
		c.Attributes = make(map[string]string, len(t.Attributes))
		for k, v := range t.Attributes {
			c.Attributes[k] = v
		}
	}
	return c
}
