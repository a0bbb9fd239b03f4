package blog

import (
	"errors"
	"fmt"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'slug'"}))
	assert.True(t, isDuplicateKey(fmt.Errorf("wrapped: %w", &mysqldriver.MySQLError{Number: 1062})))
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(errors.New("Error 1062: Duplicate entry 'hello-world' for key 'blogs.slug'")))

	assert.False(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1045, Message: "Access denied"}))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
}
