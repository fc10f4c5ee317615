package sqlite

const pantryColumns = `id, user_id, name, name_normalized, quantity, unit, category, perishable, notes, created_at, updated_at, version`

const menuColumns = `id, user_id, week_start, persons, scope, status, days, prepared, created_at, updated_at, finalized_at, version`

// Pantry statements
const (
	sqlInsertPantryItem = `INSERT INTO pantry_items (` + pantryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	sqlGetPantryItem = `SELECT ` + pantryColumns + ` FROM pantry_items WHERE user_id = ? AND id = ?`

	sqlFindPantryByName = `SELECT ` + pantryColumns + ` FROM pantry_items WHERE user_id = ? AND name_normalized = ? ORDER BY id`

	sqlUpdatePantryItem = `UPDATE pantry_items
		SET name = ?, name_normalized = ?, quantity = ?, unit = ?, category = ?, perishable = ?, notes = ?,
		    updated_at = ?, version = version + 1
		WHERE user_id = ? AND id = ? AND version = ?
		RETURNING ` + pantryColumns

	sqlDeletePantryItem = `DELETE FROM pantry_items WHERE user_id = ? AND id = ?`

	sqlDeletePantryItemVersioned = `DELETE FROM pantry_items WHERE user_id = ? AND id = ? AND version = ?`

	sqlApplyPantryUpdate = `UPDATE pantry_items SET quantity = ?, updated_at = ?, version = version + 1
		WHERE user_id = ? AND id = ? AND version = ?`

	sqlPantryItemExists = `SELECT 1 FROM pantry_items WHERE user_id = ? AND id = ?`
)

// Menu statements
const (
	sqlInsertMenu = `INSERT INTO menus (` + menuColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	sqlGetMenu = `SELECT ` + menuColumns + ` FROM menus WHERE user_id = ? AND id = ?`

	sqlUpdateMenu = `UPDATE menus SET days = ?, scope = ?, status = ?, finalized_at = ?, updated_at = ?, version = version + 1
		WHERE user_id = ? AND id = ? AND version = ?
		RETURNING ` + menuColumns

	sqlAppendPrepared = `UPDATE menus
		SET prepared = json_insert(prepared, '$[#]', json(?)), updated_at = ?, version = version + 1
		WHERE user_id = ? AND id = ? AND version = ?
		RETURNING ` + menuColumns

	sqlMenuExists = `SELECT 1 FROM menus WHERE user_id = ? AND id = ?`
)
