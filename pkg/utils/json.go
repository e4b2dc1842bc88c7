package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa com indentação; []byte é reindentado como está
func PrettyJSON(in any) string {
	var out []byte
	var err error

	if raw, ok := in.([]byte); ok {
		var decoded any
		if err = json.Unmarshal(raw, &decoded); err == nil {
			out, err = json.MarshalIndent(decoded, "", "  ")
		}
	} else {
		out, err = json.MarshalIndent(in, "", "  ")
	}

	if err != nil {
		logrus.WithError(err).Warn("Erro ao formatar JSON")
		return ""
	}

	return string(out)
}
