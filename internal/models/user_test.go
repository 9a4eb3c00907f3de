package models_test

import (
	"github.com/smartfinance/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserBySubjectCreates() {
	user, err := models.UserBySubject(models.DB, "auth0|12345")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "auth0|12345", user.Subject)
	assert.NotZero(suite.T(), user.ID)
}

func (suite *TestSuiteStandard) TestUserBySubjectIdempotent() {
	first, err := models.UserBySubject(models.DB, "auth0|12345")
	assert.Nil(suite.T(), err)

	second, err := models.UserBySubject(models.DB, "auth0|12345")
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), first.ID, second.ID)

	var count int64
	models.DB.Model(&models.User{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	user := suite.createTestUser(models.User{
		Subject: " auth0|space ",
		Email:   " user@example.com ",
	})

	assert.Equal(suite.T(), "auth0|space", user.Subject)
	assert.Equal(suite.T(), "user@example.com", user.Email)
}
