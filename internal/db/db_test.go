package db_test

import (
	"context"
	"database/sql"
	"errors"
	"rewarder/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
	Status   string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateModels", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			err = testDB.MigrateModels(&Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."id" = \$1 AND "tests"\."username" = \$2 ORDER BY "tests"\."id" LIMIT \$3`).
					WithArgs(1, "Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "status"}).
						AddRow(1, "Alice", "pending"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, map[string]any{"id": 1, "username": "Alice"}, &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."username" = \$1 ORDER BY "tests"\."id" LIMIT \$2`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, map[string]any{"username": "Ghost"}, &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."username" = \$1.*`).
					WithArgs("Alice", 1).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				var result Test
				err := testDB.GetOneBy(ctx, map[string]any{"username": "Alice"}, &result)
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).To(MatchError(ContainSubstring("getting record by [username]")))
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."status" = \$1 ORDER BY id`).
					WithArgs("pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "status"}).
						AddRow(1, "Alice", "pending").
						AddRow(2, "Bob", "pending"))
			})

			It("should return all matching records in order", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, map[string]any{"status": "pending"}, "id", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."username".*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, map[string]any{"username": "Invalid"}, "", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateWhere", func() {
		var (
			affected int64
			result   Test
		)

		JustBeforeEach(func() {
			result = Test{}
			affected, err = testDB.UpdateWhere(ctx, &result,
				map[string]any{"id": 1, "status": "pending"},
				map[string]any{"status": "claimed"})
		})

		When("the row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`UPDATE "tests" SET "status"=\$1 WHERE "tests"\."id" = \$2 AND "tests"\."status" = \$3 RETURNING \*`).
					WithArgs("claimed", 1, "pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "status"}).
						AddRow(1, "Alice", "claimed"))
				mock.ExpectCommit()
			})

			It("should return the updated row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(result.Status).To(Equal("claimed"))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`UPDATE "tests" SET "status"=\$1 WHERE .* RETURNING \*`).
					WithArgs("claimed", 1, "pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "status"}))
				mock.ExpectCommit()
			})

			It("should report zero affected rows", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(BeZero())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`UPDATE "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("updating records by [id status]")))
				Expect(affected).To(BeZero())
			})
		})
	})

	Describe("AdvisoryLock", func() {
		When("the lock is acquired", func() {
			BeforeEach(func() {
				mock.ExpectExec(`SELECT pg_advisory_lock\(\$1\)`).
					WithArgs(int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`SELECT pg_advisory_unlock\(\$1\)`).
					WithArgs(int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			})

			It("should lock and unlock on release", func() {
				release, err := testDB.AdvisoryLock(ctx, 42)
				Expect(err).NotTo(HaveOccurred())
				Expect(release()).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the lock query fails", func() {
			BeforeEach(func() {
				mock.ExpectExec(`SELECT pg_advisory_lock\(\$1\)`).
					WithArgs(int64(42)).
					WillReturnError(errors.New("canceling statement"))
			})

			It("should return an error and no release func", func() {
				release, err := testDB.AdvisoryLock(ctx, 42)
				Expect(err).To(MatchError(ContainSubstring("advisory lock 42")))
				Expect(release).To(BeNil())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
