// seed genera un script SQL para poblar el catálogo de productos a partir
// de un CSV exportado del ERP antiguo (codificado en ISO-8859-1 / Windows-1252).
//
// Formato esperado: code;name;description;category;unit_price;stock_quantity
// La primera fila es cabecera y se ignora.
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_products.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	code, name, description, category string
	unitPrice                         string
	stockQuantity                     int
}

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Las exportaciones del ERP antiguo vienen en Windows-1252.
	reader := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 6

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var rows []productRow
	for _, rec := range records[1:] {
		code := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if code == "" || name == "" {
			continue
		}
		price := strings.TrimSpace(strings.ReplaceAll(rec[4], ",", "."))
		if _, err := strconv.ParseFloat(price, 64); err != nil {
			price = "0"
		}
		qty, _ := strconv.Atoi(strings.TrimSpace(rec[5]))
		rows = append(rows, productRow{
			code:          code,
			name:          name,
			description:   strings.TrimSpace(rec[2]),
			category:      strings.TrimSpace(rec[3]),
			unitPrice:     price,
			stockQuantity: qty,
		})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de productos importado del ERP antiguo\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	for _, r := range rows {
		fmt.Fprintf(out, "INSERT INTO products (id, code, name, description, category, unit_price, stock_quantity)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid()::text, '%s', '%s', '%s', '%s', %s, %d)\n",
			escapeSQL(r.code), escapeSQL(r.name), escapeSQL(r.description),
			escapeSQL(r.category), r.unitPrice, r.stockQuantity)
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, unit_price = EXCLUDED.unit_price, stock_quantity = EXCLUDED.stock_quantity;\n")
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
