// internal/services/enquiry_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSVRowQuotesAndEscapes(t *testing.T) {
	var b strings.Builder
	writeCSVRow(&b, []string{"plain", `has "quotes"`, "has, comma", "line\nbreak"})

	assert.Equal(t, "\"plain\",\"has \"\"quotes\"\"\",\"has, comma\",\"line\nbreak\"\n", b.String())
}

func TestWriteCSVRowEmptyFields(t *testing.T) {
	var b strings.Builder
	writeCSVRow(&b, []string{"", "", ""})

	assert.Equal(t, "\"\",\"\",\"\"\n", b.String())
}
