// Package qbclient provides the primary entry point for constructing a
// QuickBooks Online API client that implements the qb.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of
// the entity interfaces and types defined in the qb package. Most
// applications should import qbclient to build a client, then use the
// returned qb.Client to access entity-specific clients, for example
// Customers(), Invoices(), Accounts(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/quickbooks-client/pkg/qb"
//	  "github.com/fivetwenty-io/quickbooks-client/pkg/qbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an access token you already have:
//	  cli, err := qbclient.NewWithToken("9130357849520000", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with OAuth2 credentials; bearer tokens are obtained and
//	  // renewed via the refresh_token grant, and the rotated refresh
//	  // token is tracked automatically:
//	  cli, err = qbclient.New(&qb.Config{
//	    RealmID:      "9130357849520000",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    RefreshToken: "refresh-token",
//	    Sandbox:      true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use entity clients via the qb.Client interface
//	  customers, err := cli.Customers().Query(ctx, map[string]interface{}{
//	    "Active": true,
//	    "limit":  10,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Sandbox and endpoint overrides
//
// Config.Sandbox routes requests to the sandbox accounting and payments
// hosts. APIEndpoint and PaymentsEndpoint override either host
// explicitly, which is how tests point the client at a local stub.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken,
// NewWithOAuth2, and NewSandbox that wrap New with the appropriate
// configuration.
package qbclient
