//go:build e2e

package e2e

import (
	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// SharedSuite gives each embedding suite its own seeded database and a
// router wired like production. Every subtest starts from the seed.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	pool, dbCfg := createDatabase(t, sharedPostgres(t))
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbCfg)
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset database")
}
