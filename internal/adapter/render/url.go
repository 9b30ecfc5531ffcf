// Package render builds delivery URLs for the image rendering backend.
// The URL encodes the full transformation, so identical inputs always
// produce the identical URL and no request leaves the process.
package render

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// Request describes one rendering of an uploaded source image.
type Request = domain.RenderRequest

// URLBuilder produces Cloudinary-style delivery URLs.
type URLBuilder struct {
	base string
}

// NewURLBuilder creates a builder for cfg.CloudName under cfg.BaseURL.
func NewURLBuilder(cfg config.RenderConfig) *URLBuilder {
	return &URLBuilder{
		base: strings.TrimRight(cfg.BaseURL, "/") + "/" + url.PathEscape(cfg.CloudName) + "/image/upload",
	}
}

// Build returns the delivery URL for req. Errors wrap domain.ErrRenderFailed.
func (b *URLBuilder) Build(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	if strings.TrimSpace(req.Src) == "" {
		return "", fmt.Errorf("%w: missing source public id", domain.ErrRenderFailed)
	}
	if req.Width < 0 || req.Height < 0 {
		return "", fmt.Errorf("%w: negative dimensions %dx%d", domain.ErrRenderFailed, req.Width, req.Height)
	}

	parts := []string{b.base}
	parts = append(parts, segments(req)...)
	parts = append(parts, escapePublicID(req.Src))

	return strings.Join(parts, "/"), nil
}

// segments renders one URL component per configured kind, in a fixed order.
// Without a fill, the target size is appended as a final c_limit component.
func segments(req Request) []string {
	cfg := req.Config
	if cfg.IsEmpty() {
		return sizeSegment(req.Width, req.Height)
	}

	var out []string

	if isSet(cfg.Restore) {
		out = append(out, "e_gen_restore")
	}
	if isSet(cfg.RemoveBackground) {
		out = append(out, "e_background_removal")
	}

	if f := cfg.Fill; f != nil {
		opts := []string{"c_pad", "b_gen_fill"}
		if f.AspectRatio != nil {
			opts = append(opts, "ar_"+*f.AspectRatio)
		}
		if w := pick(f.Width, req.Width); w > 0 {
			opts = append(opts, "w_"+strconv.Itoa(w))
		}
		if h := pick(f.Height, req.Height); h > 0 {
			opts = append(opts, "h_"+strconv.Itoa(h))
		}
		out = append(out, strings.Join(opts, ","))
	}

	if r := cfg.Recolor; r != nil {
		params := []string{}
		if r.Prompt != nil {
			params = append(params, "prompt_"+escapeParam(*r.Prompt))
		}
		if r.To != nil {
			params = append(params, "to-color_"+escapeParam(strings.TrimPrefix(*r.To, "#")))
		}
		if isSet(r.Multiple) {
			params = append(params, "multiple_true")
		}
		out = append(out, effect("gen_recolor", params))
	}

	if r := cfg.Remove; r != nil {
		params := []string{}
		if r.Prompt != nil {
			params = append(params, "prompt_"+escapeParam(*r.Prompt))
		}
		if isSet(r.RemoveShadow) {
			params = append(params, "remove-shadow_true")
		}
		if isSet(r.Multiple) {
			params = append(params, "multiple_true")
		}
		out = append(out, effect("gen_remove", params))
	}

	if cfg.Fill == nil {
		out = append(out, sizeSegment(req.Width, req.Height)...)
	}

	return out
}

func sizeSegment(width, height int) []string {
	if width <= 0 && height <= 0 {
		return nil
	}
	opts := []string{"c_limit"}
	if width > 0 {
		opts = append(opts, "w_"+strconv.Itoa(width))
	}
	if height > 0 {
		opts = append(opts, "h_"+strconv.Itoa(height))
	}
	return []string{strings.Join(opts, ",")}
}

func effect(name string, params []string) string {
	if len(params) == 0 {
		return "e_" + name
	}
	return "e_" + name + ":" + strings.Join(params, ";")
}

func isSet(b *bool) bool { return b != nil && *b }

func pick(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// escapeParam escapes characters that separate transformation parameters.
func escapeParam(s string) string {
	return url.PathEscape(strings.NewReplacer(",", " ", ";", " ", ":", " ").Replace(s))
}

func escapePublicID(id string) string {
	parts := strings.Split(id, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
