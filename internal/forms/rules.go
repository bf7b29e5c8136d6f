package forms

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Mensajes estándar (mismo texto que mostraban los formularios originales).
const (
	MsgRequired = "This field is required."
	MsgChoice   = "Not a valid choice."
	MsgURL      = "Invalid URL."
	MsgInteger  = "Not a valid integer value."

	msgRangeFmt  = "Number must be between %d and %d."
	msgMaxLenFmt = "Field cannot be longer than %d characters."
)

func Required() Rule {
	return Rule{
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
		Message: MsgRequired,
	}
}

func OneOf(choices ...string) Rule {
	return Rule{
		Check:   func(v string) bool { return slices.Contains(choices, v) },
		Message: MsgChoice,
	}
}

// URL acepta solo URLs absolutas http/https con host que tenga al menos un punto.
// Espacios alrededor invalidan la URL.
func URL() Rule {
	return Rule{
		Check:   IsURL,
		Message: MsgURL,
	}
}

func Integer() Rule {
	return Rule{
		Check: func(v string) bool {
			_, err := strconv.Atoi(strings.TrimSpace(v))
			return err == nil
		},
		Message: MsgInteger,
	}
}

// IntRange asume que Integer() ya pasó.
func IntRange(lo, hi int) Rule {
	return Rule{
		Check: func(v string) bool {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			return err == nil && n >= lo && n <= hi
		},
		Message: fmt.Sprintf(msgRangeFmt, lo, hi),
	}
}

// MaxLength cuenta runes del valor crudo, espacios incluidos.
func MaxLength(n int) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) <= n },
		Message: fmt.Sprintf(msgMaxLenFmt, n),
	}
}

func IsURL(v string) bool {
	if v == "" || strings.ContainsAny(v, " \t\n") {
		return false
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	if host == "" || !strings.Contains(host, ".") {
		return false
	}
	return !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}

// ToInt es el Convert para campos enteros.
func ToInt(v string) any {
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// ToBool sigue la semántica de un checkbox HTML: ausente, vacío o "false" => false.
func ToBool(v string) any {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "false")
}
