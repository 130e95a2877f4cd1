package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Artwork is a catalog entry mirrored from the remote service.
//
// Artist never changes after upload. Owner equals Artist until the item
// is sold. IsSold is one-way.
type Artwork struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Artist   string `json:"artist"`
	Owner    string `json:"owner"`
	Img      string `json:"img"`
	Caption  string `json:"caption,omitempty"`
	IsSold   bool   `json:"isSold"`

	// Sales is the server-side counter. Rankings count sold items instead.
	Sales int `json:"sales,omitempty"`
}

// UnmarshalJSON accepts the price as an integer, a fractional number or a
// numeric string, rounded to the nearest whole amount. The server stores
// whatever the upload form sent.
func (a *Artwork) UnmarshalJSON(b []byte) error {
	type plain Artwork
	aux := struct {
		*plain
		Price json.RawMessage `json:"price"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	price, err := parsePrice(aux.Price)
	if err != nil {
		return err
	}
	a.Price = price
	return nil
}

func parsePrice(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("price %s: %w", raw, err)
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("price %s: not a number", raw)
	}
	return int64(math.Round(f)), nil
}

// Attachment is a file read from disk and sent as a multipart part
// (artwork image or payment slip).
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Seller is one row of the top sellers ranking.
type Seller struct {
	ArtistName          string
	SalesCount          int
	RepresentativeImage string
}
