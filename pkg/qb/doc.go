// Package qb provides types, interfaces, and helpers for working with the
// QuickBooks Online accounting and Payments APIs.
//
// # Overview
//
// The qb package defines the domain types (e.g., Customer, Invoice, Bill,
// Account) and the interfaces for entity-oriented clients (e.g.,
// CustomersClient, InvoicesClient). A concrete implementation of these
// clients is provided by the qbclient package, which wires configuration,
// transport, and authentication. Most consumers should import qbclient to
// construct a client and then interact with the entity client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := qbclient.New(&qb.Config{
//	    RealmID:      "1234567890",
//	    ClientID:     "...",
//	    ClientSecret: "...",
//	    RefreshToken: "...",
//	    Sandbox:      true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  customers, err := cli.Customers().Query(ctx, map[string]interface{}{"Active": true})
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Queries
//
// Entity Query methods accept a literal SELECT suffix string, an ordered
// []qb.Criterion, or a map of field names to values. Reserved fields
// limit, offset, asc, and desc map to the maxresults, startposition, and
// orderby clauses of the query grammar. See CriteriaToString for the
// exact translation rules.
//
// # Change data capture
//
// CDCClient.Changes returns everything mutated since a timestamp;
// ChangePoller turns that into a push-style feed with retry backoff.
package qb
