// Package domain contains the core model for commonmeta.
//
// The domain is transport- and persistence-agnostic: it does not depend on JSON
// wire shapes, net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
