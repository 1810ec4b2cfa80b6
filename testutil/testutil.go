package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
)

// ApprovedPurchaseResponse is a vendor api reply for an approved card
// purchase, in the shape the production endpoint returns.
const ApprovedPurchaseResponse = `<?xml version="1.0"?>
<message>
    <response>1</response>
    <responseMessage>APPROVED</responseMessage>
    <notice></notice>
    <transaction>
        <transactionId>1111111</transactionId>
        <type>purchase</type>
        <date>2026-08-30</date>
        <time>11:32:02</time>
        <cardHolderName>Test Person</cardHolderName>
        <amount>50.01</amount>
        <currency>CAD</currency>
        <cardNumber>1111********9999</cardNumber>
        <cardToken>80defad45bae30e557da0e</cardToken>
        <expiryDate>0125</expiryDate>
        <cardType>MasterCard</cardType>
        <avsResponse>X</avsResponse>
        <cvvResponse>M</cvvResponse>
        <approvalCode>T6E1ST</approvalCode>
        <orderNumber>INV1000</orderNumber>
        <customerCode>CST1000</customerCode>
    </transaction>
</message>`

// DeclinedPurchaseResponse is a vendor api reply for a declined transaction.
const DeclinedPurchaseResponse = `<?xml version="1.0"?>
<message>
    <response>0</response>
    <responseMessage>DECLINED</responseMessage>
    <notice></notice>
</message>`

// MalformedResponse has no top level response field and cannot be processed.
const MalformedResponse = `<?xml version="1.0"?>
<message>
    <notice></notice>
</message>`

func CreateMockClient(hasResponseBody bool, status int, responseBody string) *http.Client {

	mockStreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if hasResponseBody {
			w.Write([]byte(responseBody))
		}
		w.WriteHeader(status)
	}))

	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return url.Parse(mockStreamServer.URL)
		},
	}

	httpClient := &http.Client{Transport: transport}

	return httpClient
}
