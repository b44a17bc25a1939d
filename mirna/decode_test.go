package mirna

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDecodeJSONStatusError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusUnauthorized,
		Status:     "401 Unauthorized",
		Body:       io.NopCloser(strings.NewReader(`{"message":"invalid token"}`)),
	}

	var out []MiRNA
	err := DecodeJSON(resp, &out)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "invalid token", statusErr.Message)
	assert.Equal(t, `{"message":"invalid token"}`, string(statusErr.Body))
	assert.Equal(t, "miRNA API returned 401 Unauthorized: invalid token", err.Error())
}

func TestDecodeJSONPlainTextError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Status:     "502 Bad Gateway",
		Body:       io.NopCloser(strings.NewReader("upstream down")),
	}

	err := DecodeJSON(resp, &[]Pathway{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Empty(t, statusErr.Message)
	assert.Equal(t, "miRNA API returned 502 Bad Gateway", err.Error())
}

func TestDecodeJSONMalformed(t *testing.T) {
	resp := okResponse(`[{"id":`)

	err := DecodeJSON(resp, &[]MiRNA{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode miRNA API response")
}

type LookupSuite struct {
	suite.Suite

	server *httptest.Server
	client *Client
	auth   []string
}

func (s *LookupSuite) SetupTest() {
	s.auth = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.auth = append(s.auth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		name := r.URL.Query().Get("name")
		switch r.URL.Path {
		case "/api/mirna":
			io.WriteString(w, `[{"id":"MIMAT0000076","name":"`+name+`","species":"Homo sapiens"}]`)
		case "/api/mirna/predictions":
			io.WriteString(w, `[{"mirna":"`+name+`","gene":"PTEN","score":0.97,"source":"TargetScan"},{"mirna":"`+name+`","gene":"PDCD4","score":0.91}]`)
		case "/api/gene/pathways":
			if name == "" {
				w.WriteHeader(http.StatusBadRequest)
				io.WriteString(w, `{"message":"name is required"}`)
				return
			}
			io.WriteString(w, `[{"id":"hsa04115","name":"p53 signaling pathway","gene":"`+name+`","source":"KEGG"}]`)
		default:
			http.NotFound(w, r)
		}
	}))

	c, err := New(s.server.URL + "/api")
	s.Require().NoError(err)
	s.client = c
}

func (s *LookupSuite) TearDownTest() {
	s.server.Close()
}

func (s *LookupSuite) TestLookupMiRNA() {
	entries, err := s.client.LookupMiRNA(context.Background(), "hsa-miR-21", "tok123")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("hsa-miR-21", entries[0].Name)
	s.Equal("Homo sapiens", entries[0].Species)
	s.Equal([]string{"Bearer tok123"}, s.auth)
}

func (s *LookupSuite) TestLookupPredictions() {
	predictions, err := s.client.LookupPredictions(context.Background(), "hsa-miR-21", "tok123")
	s.Require().NoError(err)
	s.Require().Len(predictions, 2)
	s.Equal("PTEN", predictions[0].Gene)
	s.InDelta(0.97, predictions[0].Score, 1e-9)
	s.Equal("", predictions[1].Source)
}

func (s *LookupSuite) TestLookupPathways() {
	pathways, err := s.client.LookupPathways(context.Background(), "TP53", "")
	s.Require().NoError(err)
	s.Require().Len(pathways, 1)
	s.Equal("TP53", pathways[0].Gene)
	s.Equal([]string{""}, s.auth)
}

func (s *LookupSuite) TestLookupStatusError() {
	_, err := s.client.LookupPathways(context.Background(), "", "")

	var statusErr *StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusBadRequest, statusErr.StatusCode)
	s.Equal("name is required", statusErr.Message)
}

func (s *LookupSuite) TestLookupTransportError() {
	s.server.Close()

	_, err := s.client.LookupMiRNA(context.Background(), "hsa-miR-21", "")
	s.Require().Error(err)
	s.Contains(err.Error(), `mirna lookup for "hsa-miR-21" failed`)
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupSuite))
}
