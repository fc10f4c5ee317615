package postgres

const pantryColumns = `id, user_id, name, name_normalized, quantity, unit, category, perishable, notes, created_at, updated_at, version`

const menuColumns = `id, user_id, week_start, persons, scope, status, days, prepared, created_at, updated_at, finalized_at, version`

// pantryCopyColumns is the column order used by CreateItems' COPY
var pantryCopyColumns = []string{
	"id", "user_id", "name", "name_normalized", "quantity", "unit", "category",
	"perishable", "notes", "created_at", "updated_at", "version",
}

// Pantry statements
const (
	sqlGetPantryItem = `SELECT ` + pantryColumns + ` FROM pantry_items WHERE user_id = $1 AND id = $2`

	sqlFindPantryByName = `SELECT ` + pantryColumns + ` FROM pantry_items WHERE user_id = $1 AND name_normalized = $2 ORDER BY id`

	sqlUpdatePantryItem = `UPDATE pantry_items
		SET name = $1, name_normalized = $2, quantity = $3, unit = $4, category = $5, perishable = $6, notes = $7,
		    updated_at = NOW(), version = version + 1
		WHERE user_id = $8 AND id = $9 AND version = $10
		RETURNING ` + pantryColumns

	sqlDeletePantryItem = `DELETE FROM pantry_items WHERE user_id = $1 AND id = $2`

	sqlDeletePantryItemVersioned = `DELETE FROM pantry_items WHERE user_id = $1 AND id = $2 AND version = $3`

	sqlApplyPantryUpdate = `UPDATE pantry_items SET quantity = $1, updated_at = NOW(), version = version + 1
		WHERE user_id = $2 AND id = $3 AND version = $4`

	sqlPantryItemExists = `SELECT EXISTS (SELECT 1 FROM pantry_items WHERE user_id = $1 AND id = $2)`
)

// Menu statements
const (
	sqlInsertMenu = `INSERT INTO menus (` + menuColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	sqlGetMenu = `SELECT ` + menuColumns + ` FROM menus WHERE user_id = $1 AND id = $2`

	sqlUpdateMenu = `UPDATE menus SET days = $1, scope = $2, status = $3, finalized_at = $4, updated_at = NOW(), version = version + 1
		WHERE user_id = $5 AND id = $6 AND version = $7
		RETURNING ` + menuColumns

	sqlAppendPrepared = `UPDATE menus
		SET prepared = prepared || $1::jsonb, updated_at = NOW(), version = version + 1
		WHERE user_id = $2 AND id = $3 AND version = $4
		RETURNING ` + menuColumns

	sqlMenuExists = `SELECT EXISTS (SELECT 1 FROM menus WHERE user_id = $1 AND id = $2)`
)
