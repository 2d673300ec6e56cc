package server

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/modclock/modclock/pkg/cipher"
	"github.com/modclock/modclock/pkg/crt"
	"github.com/modclock/modclock/pkg/fermat"
	"github.com/modclock/modclock/pkg/math/arith"
	"github.com/modclock/modclock/pkg/math/numtheory"
	"github.com/modclock/modclock/pkg/math/sample"
	"github.com/modclock/modclock/pkg/rsa"
)

var ErrUnknownOperation = errors.New("server: unknown modular operation")

type errorResponse struct {
	Error string `json:"error"`
}

type resultResponse struct {
	Result int64 `json:"result"`
}

type textResponse struct {
	Result string `json:"result"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decode fills v, which may carry the endpoint's default values, from
// the request body. Fields absent from the body keep their defaults.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleModularOperation(w http.ResponseWriter, r *http.Request) {
	req := struct {
		A         int64  `json:"a"`
		B         int64  `json:"b"`
		M         int64  `json:"m"`
		Operation string `json:"operation"`
	}{M: 12, Operation: "add"}
	if !s.decode(w, r, &req) {
		return
	}

	m, err := arith.NewModulus(req.M)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var result int64
	switch req.Operation {
	case "add":
		result = m.Add(req.A, req.B)
	case "subtract":
		result = m.Sub(req.A, req.B)
	case "multiply":
		result = m.Mul(req.A, req.B)
	case "power":
		result, err = m.Exp(req.A, req.B)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%q: %w", req.Operation, ErrUnknownOperation))
		return
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: result})
}

func (s *Server) handleCaesar(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text    string `json:"text"`
		Shift   int    `json:"shift"`
		Decrypt bool   `json:"decrypt"`
	}{Shift: 3}
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, textResponse{Result: cipher.Caesar(req.Text, req.Shift, req.Decrypt)})
}

func (s *Server) handleVigenere(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text    string `json:"text"`
		Key     string `json:"key"`
		Decrypt bool   `json:"decrypt"`
	}{Key: "KEY"}
	if !s.decode(w, r, &req) {
		return
	}
	result, err := cipher.Vigenere(req.Text, req.Key, req.Decrypt)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, textResponse{Result: result})
}

type keyPairResponse struct {
	N           int64  `json:"n"`
	E           int64  `json:"e"`
	D           int64  `json:"d"`
	Phi         int64  `json:"phi"`
	Fingerprint string `json:"fingerprint"`
}

func newKeyPairResponse(kp *rsa.KeyPair) keyPairResponse {
	return keyPairResponse{
		N:           kp.N,
		E:           kp.E,
		D:           kp.D,
		Phi:         kp.Phi,
		Fingerprint: kp.Fingerprint(),
	}
}

func (s *Server) handleRSAGenerate(w http.ResponseWriter, r *http.Request) {
	req := struct {
		P int64 `json:"p"`
		Q int64 `json:"q"`
	}{P: 61, Q: 53}
	if !s.decode(w, r, &req) {
		return
	}
	kp, err := rsa.GenerateKeys(req.P, req.Q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newKeyPairResponse(kp))
}

func (s *Server) handleRSAGenerateRandom(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Bits int `json:"bits"`
	}{Bits: 16}
	if !s.decode(w, r, &req) {
		return
	}
	p, q, err := sample.Pair(rand.Reader, req.Bits, s.pool)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	kp, err := rsa.GenerateKeys(p, q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newKeyPairResponse(kp))
}

func (s *Server) handleRSAEncrypt(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Message int64 `json:"message"`
		E       int64 `json:"e"`
		N       int64 `json:"n"`
	}{}
	if !s.decode(w, r, &req) {
		return
	}
	result, err := rsa.Encrypt(req.Message, req.E, req.N)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: result})
}

func (s *Server) handleRSADecrypt(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Ciphertext int64 `json:"ciphertext"`
		D          int64 `json:"d"`
		N          int64 `json:"n"`
	}{}
	if !s.decode(w, r, &req) {
		return
	}
	result, err := rsa.Decrypt(req.Ciphertext, req.D, req.N)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: result})
}

func (s *Server) handleCRTSolve(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Remainders []int64 `json:"remainders"`
		Moduli     []int64 `json:"moduli"`
	}{}
	if !s.decode(w, r, &req) {
		return
	}
	sol, err := crt.Solve(req.Remainders, req.Moduli)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Result  int64 `json:"result"`
		Modulus int64 `json:"modulus"`
	}{Result: sol.X, Modulus: sol.M})
}

type fermatStepResponse struct {
	Exponent int64 `json:"exponent"`
	Result   int64 `json:"result"`
}

func (s *Server) handleFermatVerify(w http.ResponseWriter, r *http.Request) {
	req := struct {
		A int64 `json:"a"`
		P int64 `json:"p"`
	}{A: 2, P: 7}
	if !s.decode(w, r, &req) {
		return
	}
	res, err := fermat.Verify(req.A, req.P)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	steps := make([]fermatStepResponse, len(res.Steps))
	for i, st := range res.Steps {
		steps[i] = fermatStepResponse{Exponent: st.Exponent, Result: st.Result}
	}
	s.writeJSON(w, http.StatusOK, struct {
		Result int64                `json:"result"`
		Steps  []fermatStepResponse `json:"steps"`
	}{Result: res.Result, Steps: steps})
}

func (s *Server) handleIsPrime(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(r.PathValue("n"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid number: %w", err))
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		N       int64 `json:"n"`
		IsPrime bool  `json:"isPrime"`
	}{N: n, IsPrime: numtheory.IsPrime(n)})
}
