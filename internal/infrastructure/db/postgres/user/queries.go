package user

const (
	// Listing and lookups include deactivated accounts: removal is a soft
	// delete and deactivated users stay readable.
	SelectUsers = `
		SELECT id, name, email, password_hash, birth_date, phone, active, created_at, updated_at
		FROM users
		ORDER BY id
	`
	SelectUserByID = `
		SELECT id, name, email, password_hash, birth_date, phone, active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	InsertUser = `
		INSERT INTO users (name, email, password_hash, birth_date, phone, active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6)
		RETURNING
		  id, name, email, password_hash, birth_date, phone, active, created_at, updated_at
	`
	// password_hash and created_at are deliberately absent from the SET list.
	UpdateUserByID = `
		UPDATE users
		SET name = $1,
		    email = $2,
		    birth_date = $3,
		    phone = $4,
		    active = $5,
		    updated_at = $6
		WHERE id = $7
		RETURNING
		  id, name, email, password_hash, birth_date, phone, active, created_at, updated_at
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET active = FALSE,
		    updated_at = $1
		WHERE id = $2
		RETURNING
		  id, name, email, password_hash, birth_date, phone, active, created_at, updated_at
	`
	// Uniqueness spans active and deactivated accounts alike.
	SelectEmailExists = `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`
)
