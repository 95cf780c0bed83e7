//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
	"sellerdesk-backend/internal/domains/seller/repository"
	"sellerdesk-backend/pkg/testutil/containers"
)

type PostgresSellerSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	repo     seller.Repository
	ctx      context.Context
}

func TestPostgresSellerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSellerSuite))
}

func (s *PostgresSellerSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(repository.EnsureSchema(s.ctx, s.postgres.Pool))
	s.repo = repository.NewPostgresRepository(s.postgres.Pool)
}

func (s *PostgresSellerSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "sellers"))
}

func (s *PostgresSellerSuite) newSeller(name string) *seller.Seller {
	birth := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	return &seller.Seller{
		Name:       name,
		Email:      name + "@x.com",
		BirthDate:  &birth,
		BaseSalary: seller.ParseSalary("1234.5"),
		Department: &department.Department{ID: 1, Name: "Eletronics"},
	}
}

func (s *PostgresSellerSuite) TestInsertAndRead() {
	sel := s.newSeller("ana")
	s.Require().NoError(s.repo.SaveOrUpdate(s.ctx, sel))
	s.Require().NotNil(sel.ID)

	found, err := s.repo.FindByID(s.ctx, *sel.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("ana", found.Name)
	s.True(sel.BirthDate.Equal(*found.BirthDate))
	s.Equal("1234.50", found.BaseSalary.StringFixed(2))
	s.Equal(department.Department{ID: 1, Name: "Eletronics"}, *found.Department)
}

func (s *PostgresSellerSuite) TestUpdate() {
	sel := s.newSeller("bob")
	s.Require().NoError(s.repo.SaveOrUpdate(s.ctx, sel))

	sel.Name = "Bob Jr"
	sel.BaseSalary = nil
	sel.Department = nil
	s.Require().NoError(s.repo.SaveOrUpdate(s.ctx, sel))

	all, err := s.repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Bob Jr", all[0].Name)
	s.Nil(all[0].BaseSalary)
	s.Nil(all[0].Department)
}

func (s *PostgresSellerSuite) TestExplicitIDThenSerial() {
	id := 50
	sel := s.newSeller("carl")
	sel.ID = &id
	s.Require().NoError(s.repo.SaveOrUpdate(s.ctx, sel))

	next := s.newSeller("dora")
	s.Require().NoError(s.repo.SaveOrUpdate(s.ctx, next))
	s.Greater(*next.ID, 50)
}

func (s *PostgresSellerSuite) TestRemove() {
	sel := s.newSeller("eve")
	s.Require().NoError(s.repo.SaveOrUpdate(s.ctx, sel))

	removed, err := s.repo.Remove(s.ctx, *sel.ID)
	s.Require().NoError(err)
	s.True(removed)

	found, err := s.repo.FindByID(s.ctx, *sel.ID)
	s.Require().NoError(err)
	s.Nil(found)
}
