// internal/services/mailer_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailTableEscapesHTML(t *testing.T) {
	html := detailTable("New Enquiry", [][2]string{
		{"Name", "<script>alert(1)</script>"},
		{"Message", `bulk "jumbo" bags & liners`},
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp; liners")
}

func TestDetailTableSkipsEmptyRows(t *testing.T) {
	html := detailTable("New Enquiry", [][2]string{
		{"Name", "Ramesh"},
		{"Company", ""},
		{"Phone", "9876543210"},
	})

	assert.Contains(t, html, "Ramesh")
	assert.Contains(t, html, "9876543210")
	assert.NotContains(t, html, "Company")
}
