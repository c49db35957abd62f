package postgres

// SchemaDDL es el esquema que la aplicación espera encontrar. No se aplica
// automáticamente: se devuelve en los errores SCHEMA_MISSING para que el
// operador lo ejecute en su base (pantalla de configuración guiada).
//
// Los nombres de columna en camelCase vienen del esquema original y se
// conservan; por eso las queries los citan con comillas dobles.
const SchemaDDL = `
CREATE TABLE IF NOT EXISTS products (
    id uuid PRIMARY KEY,
    created_at timestamptz NOT NULL DEFAULT now(),
    name text NOT NULL,
    company text NOT NULL,
    category text,
    quantity integer NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    "purchasePrice" numeric(12,2) NOT NULL DEFAULT 0,
    "sellingPrice" numeric(12,2) NOT NULL DEFAULT 0,
    barcode text NOT NULL DEFAULT '',
    image text
);

CREATE TABLE IF NOT EXISTS product_history (
    id uuid PRIMARY KEY,
    product_id uuid NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    old_quantity integer NOT NULL,
    new_quantity integer NOT NULL,
    change_type text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
    id uuid PRIMARY KEY,
    name text NOT NULL UNIQUE,
    created_at timestamptz NOT NULL DEFAULT now()
);
`
