package psqlbuilder

import "github.com/Masterminds/squirrel"

// psql builder с плейсхолдерами $1, $2, ... для PostgreSQL
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder с postgres-плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

// Insert создает INSERT builder с postgres-плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return psql.Insert(into)
}

// Update создает UPDATE builder с postgres-плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

// Delete создает DELETE builder с postgres-плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return psql.Delete(from)
}
