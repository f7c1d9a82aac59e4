package jcolor

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is an immutable JSON value. Objects keep their members in input
// order with unique keys. Numbers keep their source text.
type Value struct {
	kind    Kind
	b       bool
	text    string
	items   []*Value
	members []Member
}

// Kind returns the variant of v. A nil Value is Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// Bool returns the boolean held by v, false for other kinds.
func (v *Value) Bool() bool {
	return v != nil && v.kind == Bool && v.b
}

// Text returns the unescaped content of a String or the literal text of a
// Number. It is empty for other kinds.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Len returns the number of elements or members; zero for scalars.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Items returns a copy of the elements of an Array.
func (v *Value) Items() []*Value {
	if v == nil || v.kind != Array {
		return nil
	}
	return append([]*Value(nil), v.items...)
}

// Members returns a copy of the members of an Object in input order.
func (v *Value) Members() []Member {
	if v == nil || v.kind != Object {
		return nil
	}
	return append([]Member(nil), v.members...)
}

// Get looks up key in an Object.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != Object {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// fromFastjson copies a parsed fastjson tree into a Value. A repeated key
// keeps the position of its first occurrence and the value of its last.
// Numbers that overflow a float64 are rejected.
func fromFastjson(fv *fastjson.Value) (*Value, error) {
	switch fv.Type() {
	case fastjson.TypeTrue:
		return &Value{kind: Bool, b: true}, nil
	case fastjson.TypeFalse:
		return &Value{kind: Bool}, nil
	case fastjson.TypeNumber:
		text := fv.String()
		if err := checkNumber(text); err != nil {
			return nil, err
		}
		return &Value{kind: Number, text: text}, nil
	case fastjson.TypeString:
		s, _ := fv.StringBytes()
		return &Value{kind: String, text: string(s)}, nil
	case fastjson.TypeArray:
		arr, _ := fv.Array()
		items := make([]*Value, len(arr))
		for i, item := range arr {
			child, err := fromFastjson(item)
			if err != nil {
				return nil, err
			}
			items[i] = child
		}
		return &Value{kind: Array, items: items}, nil
	case fastjson.TypeObject:
		obj, _ := fv.Object()
		members := make([]Member, 0, obj.Len())
		seen := make(map[string]int, obj.Len())
		var err error
		obj.Visit(func(key []byte, item *fastjson.Value) {
			if err != nil {
				return
			}
			child, cerr := fromFastjson(item)
			if cerr != nil {
				err = cerr
				return
			}
			k := string(key)
			if idx, ok := seen[k]; ok {
				members[idx].Value = child
				return
			}
			seen[k] = len(members)
			members = append(members, Member{Key: k, Value: child})
		})
		if err != nil {
			return nil, err
		}
		return &Value{kind: Object, members: members}, nil
	default:
		return &Value{kind: Null}, nil
	}
}
