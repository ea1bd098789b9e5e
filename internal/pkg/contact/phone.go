package contact

import (
	"errors"
	"net/url"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

var ErrEmptyPhone = errors.New("phone number has no digits")

// Normalizer приводит локальные номера к международному формату без плюса.
type Normalizer struct {
	countryCode string
	trunkPrefix string
	message     string
}

func NewNormalizer(countryCode, trunkPrefix, message string) *Normalizer {
	return &Normalizer{
		countryCode: countryCode,
		trunkPrefix: trunkPrefix,
		message:     message,
	}
}

// Normalize оставляет только цифры ASCII, затем:
// номер с кодом страны не меняется, префикс выхода на межгород заменяется кодом страны,
// к остальным код страны дописывается в начало.
func (n *Normalizer) Normalize(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, n.countryCode):
		return digits
	case n.trunkPrefix != "" && strings.HasPrefix(digits, n.trunkPrefix):
		return n.countryCode + strings.TrimPrefix(digits, n.trunkPrefix)
	default:
		return n.countryCode + digits
	}
}

// Link строит ссылку на чат WhatsApp с заготовленным сообщением.
func (n *Normalizer) Link(raw string) (string, error) {
	phone := n.Normalize(raw)
	if phone == "" {
		return "", ErrEmptyPhone
	}

	link := whatsAppBaseURL + phone
	if n.message != "" {
		link += "?text=" + url.QueryEscape(n.message)
	}
	return link, nil
}
