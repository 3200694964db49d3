package databaseaccess

import (
	"fmt"
	"path/filepath"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
)

const dbFileName = "relayer.db"

// NewDatabase opens (or creates) the relayer database inside dbsPath directory
func NewDatabase(dbsPath string) (core.Database, error) {
	if err := common.CreateDirectoryIfNotExists(dbsPath, 0770); err != nil {
		return nil, fmt.Errorf("failed to create directory for relayer database: %w", err)
	}

	db := &BBoltDatabase{}
	if err := db.Init(filepath.Join(dbsPath, dbFileName)); err != nil {
		return nil, err
	}

	return db, nil
}
