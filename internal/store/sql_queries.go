package store

// accountColumns is the canonical column order used by every account query
// and by scanAccountRow.
const accountColumns = `account_id, email, password_hash, active,
	email_code, email_code_expires_at,
	reset_code, reset_code_expires_at,
	access_token, name, birth, country, lang, pic,
	created_at, updated_at`

const (
	createAccount = `INSERT INTO accounts (account_id, email, password_hash, email_code, email_code_expires_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + accountColumns + `;`

	findAccountByEmail = `SELECT ` + accountColumns + `
	FROM accounts
	WHERE email = $1;`

	findAccountByID = `SELECT ` + accountColumns + `
	FROM accounts
	WHERE account_id = $1;`

	findAccountByActivationCode = `SELECT ` + accountColumns + `
	FROM accounts
	WHERE email = $1 AND email_code = $2 AND email_code_expires_at > $3;`

	markAccountActive = `UPDATE accounts
	SET active = TRUE, email_code = NULL, email_code_expires_at = NULL, updated_at = NOW()
	WHERE account_id = $1 AND email_code = $2 AND NOT active;`

	setAccessToken = `UPDATE accounts
	SET access_token = $2, updated_at = NOW()
	WHERE account_id = $1;`

	clearAccessToken = `UPDATE accounts
	SET access_token = NULL, updated_at = NOW()
	WHERE account_id = $1;`

	setResetCode = `UPDATE accounts
	SET reset_code = $2, reset_code_expires_at = $3, updated_at = NOW()
	WHERE account_id = $1;`

	consumeResetCode = `UPDATE accounts
	SET password_hash = $2, reset_code = NULL, reset_code_expires_at = NULL, updated_at = NOW()
	WHERE reset_code = $1 AND reset_code_expires_at > $3;`

	clearExpiredCodes = `UPDATE accounts
	SET email_code = CASE WHEN email_code_expires_at <= $1 THEN NULL ELSE email_code END,
		email_code_expires_at = CASE WHEN email_code_expires_at <= $1 THEN NULL ELSE email_code_expires_at END,
		reset_code = CASE WHEN reset_code_expires_at <= $1 THEN NULL ELSE reset_code END,
		reset_code_expires_at = CASE WHEN reset_code_expires_at <= $1 THEN NULL ELSE reset_code_expires_at END
	WHERE email_code_expires_at <= $1 OR reset_code_expires_at <= $1;`

	createArchive = `INSERT INTO archives (archive_id, account_id, url)
	VALUES ($1, $2, $3)
	RETURNING archive_id, account_id, url, created_at;`

	findArchiveByID = `SELECT archive_id, account_id, url, created_at
	FROM archives
	WHERE archive_id = $1;`

	findArchivesByAccount = `SELECT archive_id, account_id, url, created_at
	FROM archives
	WHERE account_id = $1
	ORDER BY created_at DESC;`

	createBoat = `INSERT INTO boats (boat_id, account_id, pic, make, model, length, unit_length, year,
		boat_type, boat_material, price, unit_price, vessel_name, home_port, location, published)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	RETURNING boat_id, account_id, pic, make, model, length, unit_length, year,
		boat_type, boat_material, price, unit_price, vessel_name, home_port, location, published, created_at;`

	findBoatsByAccount = `SELECT boat_id, account_id, pic, make, model, length, unit_length, year,
		boat_type, boat_material, price, unit_price, vessel_name, home_port, location, published, created_at
	FROM boats
	WHERE account_id = $1
	ORDER BY created_at DESC;`
)
