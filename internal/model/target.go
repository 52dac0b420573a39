package model

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults for the single-target form, matching the web server component
// layout the tool was written for.
const (
	DefaultAssetPath   Path   = "chess_app.js"
	DefaultHostPath    Path   = "web_server_task.c"
	DefaultStartMarker string = "static const char chess_app_js_content[] ="
	DefaultEndMarker   string = "static esp_err_t http_get_chess_js_handler(httpd_req_t *req)"
	DefaultEncoding    string = "utf-8"
)

// Target describes one asset to embed into one host document.
type Target struct {
	Name        string
	Asset       Path
	Host        Path
	StartMarker string
	EndMarker   string
	Encoding    string
	// KeepStartMarkerLine selects the span policy. When true the line holding
	// the start marker stays in place and only the content after it is
	// replaced. When false the span begins at the marker itself and the block
	// re-emits it.
	KeepStartMarkerLine bool
	// Declaration is an optional line emitted after the header, e.g.
	// "static const char app_js[] =".
	Declaration string
	Indent      string
}

// DefaultTarget returns the target used when no flags or config are given.
func DefaultTarget() Target {
	return Target{
		Asset:               DefaultAssetPath,
		Host:                DefaultHostPath,
		StartMarker:         DefaultStartMarker,
		EndMarker:           DefaultEndMarker,
		Encoding:            DefaultEncoding,
		KeepStartMarkerLine: true,
		Indent:              DefaultIndent,
	}
}

// WithDefaults fills empty optional fields.
func (t Target) WithDefaults() Target {
	if t.Encoding == "" {
		t.Encoding = DefaultEncoding
	}

	if t.Indent == "" {
		t.Indent = DefaultIndent
	}

	if t.Name == "" && t.Asset != "" {
		t.Name = t.Asset.Base()
	}

	return t
}

// Validate checks that the target carries everything the pipeline needs.
func (t Target) Validate() error {
	var errs []error

	if t.Asset == "" {
		errs = append(errs, errors.New("asset path is required"))
	}

	if t.Host == "" {
		errs = append(errs, errors.New("host path is required"))
	}

	if t.StartMarker == "" {
		errs = append(errs, errors.New("start marker is required"))
	}

	if t.EndMarker == "" {
		errs = append(errs, errors.New("end marker is required"))
	}

	if strings.Contains(t.Declaration, "\n") {
		errs = append(errs, errors.New("declaration must be a single line"))
	}

	if t.Asset != "" && t.Asset == t.Host {
		errs = append(errs, fmt.Errorf("asset and host must differ, both are %s", t.Asset))
	}

	return errors.Join(errs...)
}
