// Package shipx is the HTTP transport adapter used by the shipping API
// resources.
//
// An Adapter delegates every call to an injected HTTP client (a Doer), adds
// bearer-token headers when an access token is set, and returns the raw
// response body. Failures are passed through a translator that maps them onto
// the domain errors in package errors.
//
//	client, _ := httpclient.New(httpclient.Config{BaseURL: config.SandboxURL})
//	api := shipx.New(client, token)
//	body, err := api.Get(ctx, "/v1/organizations", nil, nil)
//	if errors.IsNotFound(err) {
//	    // ...
//	}
//
// The adapter performs no retries, parsing or locking. SetAccessToken must not
// race with in-flight calls; synchronize externally when sharing an Adapter.
package shipx
