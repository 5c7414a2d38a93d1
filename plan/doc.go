// Package plan loads declarative YAML seed plans and runs them against a
// registry.
//
// A plan names the kinds to seed, the endpoint and instances for each, and
// optional field maps. String field values starting with '$' expand through
// the fixture generators:
//
//	kinds:
//	  - kind: user
//	    endpoint: /v3/users
//	    instances:
//	      - count: 5
//	        fields:
//	          email: $email
//	          username: $username
//	          invite_code: $uuid
//	  - kind: product
//	    endpoint: /v3/products
//	    instances:
//	      - fields:
//	          name: Widget
//
// Running a plan registers each kind with the default strategy (fields pass
// through as the request body) and creates all instances of a kind as one
// batch.
package plan
