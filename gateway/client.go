package gateway

import (
	"encoding/xml"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/commercegate/helcim-gateway/data"
	"github.com/commercegate/helcim-gateway/keys"
	"github.com/companieshouse/chs.go/log"
)

// Poster provides an interface by which to submit requests to the vendor api
type Poster interface {
	Post(apiURL string, HTTPClient *http.Client, requestData map[string]string) (*data.APIResponse, string, error)
}

// Post implements the Poster interface
type Post struct{}

// NewPoster returns a new implementation of the Poster interface
func NewPoster() *Post {

	return &Post{}
}

// Post executes a form-encoded POST to the vendor api and decodes the XML reply.
// The unmodified response body is returned alongside the decoded envelope for
// the audit trail.
func (impl *Post) Post(apiURL string, HTTPClient *http.Client, requestData map[string]string) (*data.APIResponse, string, error) {

	form := url.Values{}
	for name, value := range requestData {
		form.Set(name, value)
	}

	log.Trace("POST request to the vendor api", log.Data{keys.Request: apiURL})

	res, err := HTTPClient.PostForm(apiURL, form)
	if err != nil {
		return nil, "", err
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, "", &InvalidGatewayAPIResponse{res.StatusCode}
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, "", err
	}

	var apiResponse data.APIResponse
	if err := xml.Unmarshal(body, &apiResponse); err != nil {
		return nil, "", err
	}

	return &apiResponse, string(body), nil
}
