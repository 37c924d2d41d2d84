package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "email", in: "Schreib mir an max.muster@web.de bitte", want: "Schreib mir an [E-MAIL] bitte"},
		{name: "url", in: "siehe https://example.com/profil", want: "siehe [URL]"},
		{name: "phone", in: "Ruf an: 0171 1234567", want: "Ruf an: [TELEFON]"},
		{name: "date", in: "seit dem 12.03.2024", want: "seit dem [DATUM]"},
		{name: "postal code and city", in: "ich wohne in 10115 Berlin", want: "ich wohne in [PLZ ORT]"},
		{name: "street", in: "in der Hauptstraße 5 wohne ich", want: "in der [ADRESSE] wohne ich"},
		{name: "common name", in: "Thomas hat mich verlassen", want: "[NAME] hat mich verlassen"},
		{name: "relationship name", in: "mein Mann Gerhard trinkt", want: "mein Mann [NAME] trinkt"},
		{name: "title", in: "Dr. Brenner meinte", want: "[NAME] meinte"},
		{name: "company", in: "Ärger bei Brenner GmbH", want: "Ärger bei [FIRMA]"},
		{name: "city", in: "Ich bin nach München gezogen", want: "Ich bin nach [ORT] gezogen"},
		{name: "age", in: "Ich bin 34 und seit 3 Jahren allein", want: "Ich bin [ALTER] und seit [ALTER] Jahren allein"},
		{name: "food is not a city", in: "Ich kann nichts mehr essen. Essen schmeckt nicht", want: "Ich kann nichts mehr essen. Essen schmeckt nicht"},
		{name: "lowercase words survive", in: "meine frau ist traurig", want: "meine frau ist traurig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Anonymize(tt.in))
		})
	}
}
