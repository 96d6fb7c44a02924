package models_test

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionCategoryMustExist() {
	err := models.DB.Create(&models.Transaction{
		Amount:     decimal.NewFromFloat(17.23),
		Kind:       models.KindExpense,
		CategoryID: uuid.New(),
		Recurrence: models.RecurrenceSingle,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	location, err := time.LoadLocation("Europe/Berlin")
	suite.Require().Nil(err)

	transaction := suite.createTestTransaction(models.Transaction{
		Date:   time.Date(2024, 3, 12, 12, 0, 0, 0, location),
		Amount: decimal.NewFromFloat(14.03),
	})

	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestCalculateTotals() {
	category := suite.createTestCategory(models.Category{Kind: models.KindIncome})
	expenseCategory := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(5000),
		Kind:       models.KindIncome,
		CategoryID: category.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromFloat(25.90),
		CategoryID: expenseCategory.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromFloat(18.50),
		CategoryID: expenseCategory.ID,
	})

	totals, err := models.CalculateTotals(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(totals.Income.Equal(decimal.NewFromInt(5000)), "Income is %s, expected 5000", totals.Income)
	suite.Assert().True(totals.Expense.Equal(decimal.NewFromFloat(44.40)), "Expense is %s, expected 44.40", totals.Expense)
	suite.Assert().True(totals.Balance.Equal(decimal.NewFromFloat(4955.60)), "Balance is %s, expected 4955.60", totals.Balance)
}

func (suite *TestSuiteStandard) TestCalculateTotalsEmpty() {
	totals, err := models.CalculateTotals(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(totals.Income.IsZero())
	suite.Assert().True(totals.Expense.IsZero())
	suite.Assert().True(totals.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestCreateBatch() {
	category := suite.createTestCategory(models.Category{})

	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions, err := models.Expand(models.Transaction{
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(9.99),
		Kind:       models.KindExpense,
		CategoryID: category.ID,
		Recurrence: models.RecurrenceRecurring,
		EndDate:    &end,
	})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 3)

	suite.Require().Nil(models.CreateBatch(models.DB, transactions))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(3), count)
}

func (suite *TestSuiteStandard) TestCreateBatchRollback() {
	category := suite.createTestCategory(models.Category{})

	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions, err := models.Expand(models.Transaction{
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(9.99),
		Kind:       models.KindExpense,
		CategoryID: category.ID,
		Recurrence: models.RecurrenceRecurring,
		EndDate:    &end,
	})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 3)

	// Point the last transaction of the batch at a missing category so
	// that its creation fails
	transactions[2].CategoryID = uuid.New()

	err = models.CreateBatch(models.DB, transactions)
	suite.Require().NotNil(err)

	// No partial batch may remain
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromFloat(17.23),
	})

	deleted, err := models.DeleteTransaction(models.DB, transaction.ID)
	suite.Require().Nil(err)
	suite.Assert().True(deleted)

	err = models.DB.First(&models.Transaction{}, transaction.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransactionNonexistent() {
	_ = suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromFloat(17.23),
	})

	deleted, err := models.DeleteTransaction(models.DB, uuid.New())
	suite.Require().Nil(err)
	suite.Assert().False(deleted)

	// The store is unchanged
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
