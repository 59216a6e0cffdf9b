package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Madmaxs2/zcash/db"
	"github.com/Madmaxs2/zcash/orchard"
	"github.com/Madmaxs2/zcash/tree/frontier"
)

type Handler struct {
	config *Config
	store  db.FrontierStore // Read-only clone.
	ch     chan<- AppendRequest
}

// HandleAPI wraps an API endpoint with uniform error reporting.
func HandleAPI(fn func(rw http.ResponseWriter, req *http.Request) error) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		if err := fn(rw, req); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, frontier.ErrTreeFull) {
				status = http.StatusConflict
			} else if errors.Is(err, errBadRequest) {
				status = http.StatusBadRequest
			}
			rw.WriteHeader(status)
			if err := json.NewEncoder(rw).Encode(map[string]string{"error": err.Error()}); err != nil {
				log.Println(err)
			}
		}
	}
}

var errBadRequest = errors.New("bad request")

// Home redirects requests to a pre-configured URL, like the API
// documentation.
func (h *Handler) Home(rw http.ResponseWriter, req *http.Request) {
	if h.config.HomeRedirect == "" {
		http.NotFound(rw, req)
		return
	}
	http.Redirect(rw, req, h.config.HomeRedirect, http.StatusSeeOther)
}

// loadFrontier parses the last committed frontier from the store.
func (h *Handler) loadFrontier() (*orchard.Frontier, error) {
	raw, err := h.store.GetFrontier()
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return orchard.NewFrontier(), nil
	}
	return orchard.ParseFrontier(bytes.NewReader(raw))
}

type RootResponse struct {
	Root string `json:"root"`
	Size uint64 `json:"size"`
}

func (h *Handler) Root(rw http.ResponseWriter, req *http.Request) error {
	f, err := h.loadFrontier()
	if err != nil {
		return err
	}
	root := f.Root()
	return json.NewEncoder(rw).Encode(RootResponse{
		Root: hex.EncodeToString(root[:]),
		Size: f.Size(),
	})
}

type SizeResponse struct {
	Size uint64 `json:"size"`
}

func (h *Handler) Size(rw http.ResponseWriter, req *http.Request) error {
	f, err := h.loadFrontier()
	if err != nil {
		return err
	}
	return json.NewEncoder(rw).Encode(SizeResponse{Size: f.Size()})
}

type FrontierResponse struct {
	Frontier string `json:"frontier"`
}

// Frontier returns the last committed frontier in its current-format
// serialization.
func (h *Handler) Frontier(rw http.ResponseWriter, req *http.Request) error {
	raw, err := h.store.GetFrontier()
	if err != nil {
		return err
	}
	if raw == nil {
		buf := new(bytes.Buffer)
		if err := orchard.NewFrontier().Serialize(buf); err != nil {
			return err
		}
		raw = buf.Bytes()
	}
	return json.NewEncoder(rw).Encode(FrontierResponse{Frontier: hex.EncodeToString(raw)})
}

type LegacyResponse struct {
	Legacy string `json:"legacy"`
}

// Legacy returns the last committed frontier in the legacy fixed-depth
// tree encoding, for prior-generation readers.
func (h *Handler) Legacy(rw http.ResponseWriter, req *http.Request) error {
	raw, err := h.store.GetLegacy()
	if err != nil {
		return err
	}
	if raw == nil {
		buf := new(bytes.Buffer)
		if err := orchard.NewFrontier().SerializeLegacy(buf); err != nil {
			return err
		}
		raw = buf.Bytes()
	}
	return json.NewEncoder(rw).Encode(LegacyResponse{Legacy: hex.EncodeToString(raw)})
}

type AppendBundleRequest struct {
	Commitments []string `json:"commitments"`
}

func (h *Handler) AppendBundle(rw http.ResponseWriter, req *http.Request) error {
	var body AppendBundleRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	actions := make([]orchard.Action, 0, len(body.Commitments))
	for _, raw := range body.Commitments {
		decoded, err := hex.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadRequest, err)
		} else if len(decoded) != 32 {
			return fmt.Errorf("%w: commitment has wrong length: %v", errBadRequest, len(decoded))
		}
		var cmx [32]byte
		copy(cmx[:], decoded)
		actions = append(actions, orchard.NewAction(cmx))
	}

	resp := make(chan AppendResponse, 1)
	h.ch <- AppendRequest{Bundle: orchard.NewBundle(actions), Resp: resp}
	res := <-resp
	if res.Err != nil {
		return res.Err
	}
	return json.NewEncoder(rw).Encode(RootResponse{
		Root: hex.EncodeToString(res.Root[:]),
		Size: res.Size,
	})
}
