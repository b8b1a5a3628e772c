package schema

const postgresDDL = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email VARCHAR(255) UNIQUE NOT NULL,
	password VARCHAR(255) NOT NULL,
	full_name VARCHAR(255) NOT NULL,
	phone VARCHAR(50),
	balance NUMERIC(15,2) NOT NULL DEFAULT 0,
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS investment_products (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	min_investment NUMERIC(15,2) NOT NULL,
	expected_return NUMERIC(7,2) NOT NULL,
	duration_months INTEGER NOT NULL,
	risk_level VARCHAR(20) NOT NULL,
	category VARCHAR(50) NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_investments (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	product_id BIGINT NOT NULL REFERENCES investment_products(id),
	amount NUMERIC(15,2) NOT NULL,
	start_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	end_date TIMESTAMPTZ NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	current_value NUMERIC(15,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	type VARCHAR(20) NOT NULL,
	amount NUMERIC(15,2) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS payment_requests (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	payment_method VARCHAR(50) NOT NULL,
	amount NUMERIC(15,2) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	transaction_hash VARCHAR(255),
	screenshot_path VARCHAR(500),
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	processed_at TIMESTAMPTZ,
	processed_by BIGINT REFERENCES users(id),
	notes TEXT
);

CREATE TABLE IF NOT EXISTS payment_settings (
	id BIGSERIAL PRIMARY KEY,
	payment_method VARCHAR(50) UNIQUE NOT NULL,
	address VARCHAR(500) NOT NULL DEFAULT '',
	qr_code_path VARCHAR(500),
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS social_links (
	id BIGSERIAL PRIMARY KEY,
	platform VARCHAR(50) UNIQUE NOT NULL,
	url VARCHAR(500) NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_user_investments_user_id ON user_investments(user_id);
CREATE INDEX IF NOT EXISTS idx_user_investments_status ON user_investments(status);
CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_payment_requests_user_id ON payment_requests(user_id);
CREATE INDEX IF NOT EXISTS idx_payment_requests_status ON payment_requests(status);
`

const sqliteDDL = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	full_name TEXT NOT NULL,
	phone TEXT,
	balance REAL NOT NULL DEFAULT 0,
	role TEXT NOT NULL DEFAULT 'user',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS investment_products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	min_investment REAL NOT NULL,
	expected_return REAL NOT NULL,
	duration_months INTEGER NOT NULL,
	risk_level TEXT NOT NULL,
	category TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_investments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	amount REAL NOT NULL,
	start_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	end_date DATETIME NOT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	current_value REAL NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (product_id) REFERENCES investment_products(id)
);

CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	type TEXT NOT NULL,
	amount REAL NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS payment_requests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	payment_method TEXT NOT NULL,
	amount REAL NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	transaction_hash TEXT,
	screenshot_path TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	processed_at DATETIME,
	processed_by INTEGER,
	notes TEXT,
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (processed_by) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS payment_settings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	payment_method TEXT UNIQUE NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	qr_code_path TEXT,
	is_active INTEGER NOT NULL DEFAULT 1,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS social_links (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	platform TEXT UNIQUE NOT NULL,
	url TEXT NOT NULL DEFAULT '',
	is_active INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_user_investments_user_id ON user_investments(user_id);
CREATE INDEX IF NOT EXISTS idx_user_investments_status ON user_investments(status);
CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_payment_requests_user_id ON payment_requests(user_id);
CREATE INDEX IF NOT EXISTS idx_payment_requests_status ON payment_requests(status);
`

// knownTables lists every table this service or its earlier releases created, dependants first.
var knownTables = []string{
	"withdrawals",
	"social_links",
	"payment_settings",
	"deposits",
	"payment_requests",
	"transactions",
	"user_investments",
	"investment_products",
	"products",
	"investments",
	"users",
	"goose_db_version",
}
