package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	if err := newRootCmd(info).Execute(); err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
