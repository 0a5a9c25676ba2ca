package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
)

var validate = validator.New()

// isDuplicateKey detects MySQL error 1062 (duplicate entry).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
