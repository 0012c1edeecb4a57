package store

const userColumns = `id, email, first_name, last_name, company, phone, role, active, password_hash, created_at, last_login_at`

const (
	createUser = `INSERT INTO users (email, first_name, last_name, company, phone, role, active, password_hash)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUsersByIDs = `SELECT ` + userColumns + `
    FROM users
    WHERE id = ANY($1) AND active;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at DESC;`

	updateUser = `UPDATE users
    SET email = $2, first_name = $3, last_name = $4, company = $5, phone = $6, role = $7, active = $8, password_hash = $9
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	setLastLogin = `UPDATE users
    SET last_login_at = $2
    WHERE id = $1;`
)

const (
	createSession = `INSERT INTO sessions (user_id, token, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, token, expires_at, created_at;`

	findSessionByToken = `SELECT id, user_id, token, expires_at, created_at
    FROM sessions
    WHERE token = $1;`

	deleteSessionByToken = `DELETE FROM sessions
    WHERE token = $1;`

	deleteSessionsByUser = `DELETE FROM sessions
    WHERE user_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at < $1;`
)

const productColumns = `id, name, description, category_id, category, price, images, specs, tags, featured, visible, rating, created_at, updated_at`

const (
	createProduct = `INSERT INTO products (name, description, category_id, category, price, images, specs, tags, featured, visible, rating)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + productColumns + `;`

	getProduct = `SELECT ` + productColumns + `
    FROM products
    WHERE id = $1;`

	listVisibleProducts = `SELECT ` + productColumns + `
    FROM products
    WHERE visible
    ORDER BY created_at DESC;`

	listAllProducts = `SELECT ` + productColumns + `
    FROM products
    ORDER BY created_at DESC;`

	deleteProduct = `DELETE FROM products
    WHERE id = $1;`

	countVisibleByCategory = `SELECT count(*)
    FROM products
    WHERE visible AND lower(category) = lower($1);`

	relabelCategory = `UPDATE products
    SET category = $2, updated_at = now()
    WHERE category_id = $1;`
)

const categoryColumns = `id, name, description, image, active, created_at, updated_at`

const (
	createCategory = `INSERT INTO categories (name, description, image, active)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + categoryColumns + `;`

	getCategory = `SELECT ` + categoryColumns + `
    FROM categories
    WHERE id = $1;`

	listCategories = `SELECT ` + categoryColumns + `
    FROM categories
    ORDER BY name;`

	updateCategory = `UPDATE categories
    SET name = $2, description = $3, image = $4, active = $5, updated_at = now()
    WHERE id = $1
    RETURNING ` + categoryColumns + `;`

	deleteCategory = `DELETE FROM categories
    WHERE id = $1;`
)

const templateColumns = `id, name, subject, body, active, created_at, updated_at`

const (
	createTemplate = `INSERT INTO email_templates (name, subject, body, active)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + templateColumns + `;`

	getTemplate = `SELECT ` + templateColumns + `
    FROM email_templates
    WHERE id = $1;`

	listTemplates = `SELECT ` + templateColumns + `
    FROM email_templates
    ORDER BY created_at DESC;`

	updateTemplate = `UPDATE email_templates
    SET name = $2, subject = $3, body = $4, active = $5, updated_at = now()
    WHERE id = $1
    RETURNING ` + templateColumns + `;`

	deleteTemplate = `DELETE FROM email_templates
    WHERE id = $1;`

	appendEmailLog = `INSERT INTO email_logs (recipients, subject, body, status, template_id, error, sent_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, recipients, subject, body, status, template_id, error, sent_at;`
)

const mediaColumns = `id, filename, original_name, mime_type, size, path, url, uploaded_by, created_at`

const (
	createMediaFile = `INSERT INTO media_files (filename, original_name, mime_type, size, path, url, uploaded_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + mediaColumns + `;`

	getMediaFileByFilename = `SELECT ` + mediaColumns + `
    FROM media_files
    WHERE filename = $1;`

	listMediaFiles = `SELECT ` + mediaColumns + `
    FROM media_files
    ORDER BY created_at DESC;`

	deleteMediaFileByFilename = `DELETE FROM media_files
    WHERE filename = $1;`
)

const (
	getContent = `SELECT content_type, document, updated_at
    FROM site_content
    WHERE content_type = $1;`

	putContent = `INSERT INTO site_content (content_type, document, updated_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (content_type) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at;`
)
