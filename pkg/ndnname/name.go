// Package ndnname converts between NDN URI strings ("/a/b/c") and the
// verbatim wire-encoded name components a trust schema matches against.
package ndnname

import (
	"fmt"
	"strings"

	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/tlv"
)

// genericComponentType is the NDN GenericNameComponent TLV type. Every
// component this package builds uses it; the schema's own literal
// components are expected to use the same type, since matching is a
// verbatim byte comparison.
const genericComponentType = 0x08

// ParseName parses an NDN URI such as "/example/testApp/KEY/abc" into a
// Name of verbatim wire components. A leading slash is optional; an empty
// string or a bare "/" both parse to the empty name.
func ParseName(uri string) (model.Name, error) {
	uri = strings.TrimPrefix(uri, "/")
	if uri == "" {
		return model.Name{}, nil
	}
	segments := strings.Split(uri, "/")
	name := make(model.Name, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, ErrEmptyComponent
		}
		value, err := percentDecode(seg)
		if err != nil {
			return nil, err
		}
		name = append(name, encodeComponent(value))
	}
	return name, nil
}

// NameString renders a Name back into URI form, percent-encoding any byte
// that is not a conventional unreserved URI character.
func NameString(name model.Name) string {
	if len(name) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, c := range name {
		b.WriteByte('/')
		b.WriteString(componentString(c))
	}
	return b.String()
}

// encodeComponent wraps value in a generic name component's wire header.
func encodeComponent(value []byte) model.Component {
	w := tlv.NewWriter()
	w.WriteBlock(genericComponentType, value)
	return model.Component(w.Bytes())
}

// componentValue strips a component's type-length header and returns its
// payload bytes. It assumes the component was built by encodeComponent or
// decoded from a schema in the same shape.
func componentValue(c model.Component) ([]byte, error) {
	r := tlv.NewReader(c)
	val, ok, err := r.ReadBlock(genericComponentType)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("ndnname: component does not have generic type 0x%x", genericComponentType)
	}
	return val, nil
}

func componentString(c model.Component) string {
	val, err := componentValue(c)
	if err != nil {
		// Not a generic component we understand how to render; fall back
		// to a hex dump of the raw bytes so String never fails outright.
		return fmt.Sprintf("%%{%x}", []byte(c))
	}
	var b strings.Builder
	for _, ch := range val {
		if isUnreserved(ch) {
			b.WriteByte(ch)
		} else {
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}
	return b.String()
}

func isUnreserved(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	case ch == '-' || ch == '.' || ch == '_' || ch == '~' || ch == '=':
		return true
	default:
		return false
	}
}

func percentDecode(seg string) ([]byte, error) {
	out := make([]byte, 0, len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] != '%' {
			out = append(out, seg[i])
			continue
		}
		if i+2 >= len(seg) {
			return nil, ErrInvalidPercentEncoding
		}
		hi, ok1 := hexDigit(seg[i+1])
		lo, ok2 := hexDigit(seg[i+2])
		if !ok1 || !ok2 {
			return nil, ErrInvalidPercentEncoding
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	return out, nil
}

func hexDigit(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}
