package handler

import (
	"errors"
	"net/http"
	"strconv"
)

var errInvalidID = errors.New("invalid id")

func parsePathID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id64), nil
}

func parseQueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return n, nil
}
