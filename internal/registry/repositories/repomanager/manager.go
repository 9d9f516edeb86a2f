package repomanager

import (
	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/clients"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/lookup"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/phones"
)

type RepositoryManager interface {
	Clients(db dbx.DBTX) clients.Repository
	Phones(db dbx.DBTX) phones.Repository
	Lookup(db dbx.DBTX) lookup.Repository
}
