package models

import (
	"fmt"
	"strings"
	"time"
)

type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatXML  FormatType = "xml"
)

// ParseFormatType accepts the values stored in hooks.format_type.
func ParseFormatType(s string) (FormatType, error) {
	switch FormatType(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatXML:
		return FormatXML, nil
	}
	return "", fmt.Errorf("unknown format type %q", s)
}

func (f FormatType) ContentType() string {
	if f == FormatXML {
		return "application/xml"
	}
	return "application/json"
}

type Hook struct {
	ID           int64      `db:"id" json:"-"`
	UID          string     `db:"uid" json:"uid"`
	AssetUID     string     `db:"asset_uid" json:"asset_uid"`
	Name         string     `db:"name" json:"name"`
	Endpoint     string     `db:"endpoint" json:"endpoint"`
	FormatType   FormatType `db:"format_type" json:"format_type"`
	SubsetFields []string   `db:"subset_fields" json:"subset_fields"`
	Active       bool       `db:"active" json:"active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
