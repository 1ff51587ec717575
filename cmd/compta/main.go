// Command compta abre el backend configurado (archivo local o API remota), inicia sesión
// y muestra el resumen del panel. Con --replenishment lista lo que hay que pedir y con
// --pdf-dir exporta los pedidos pendientes.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/blackwoods-compta/internal/application/session"
	"github.com/jhoicas/blackwoods-compta/internal/application/workflow"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/backend"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/pdf"
	"github.com/jhoicas/blackwoods-compta/pkg/config"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

func main() {
	pdfDir := pflag.String("pdf-dir", "", "exportar los pedidos pendientes a PDF en este directorio")
	replenish := pflag.Bool("replenishment", false, "mostrar la lista de reposición (stock bajo)")
	timeout := pflag.Duration("timeout", 30*time.Second, "tiempo máximo de la ejecución")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, log, *replenish, *pdfDir); err != nil {
		log.Error().Err(err).Msg("compta")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, replenish bool, pdfDir string) error {
	repo, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	sess := session.New(repo, log)
	defer sess.Close()

	if cfg.Session.Username == "" || cfg.Session.Password == "" {
		return fmt.Errorf("COMPTA_USERNAME y COMPTA_PASSWORD son obligatorios")
	}
	res := sess.Login(ctx, cfg.Session.Username, cfg.Session.Password)
	if !res.Success {
		return fmt.Errorf("login: %s", res.Message)
	}

	summary, err := repo.DashboardSummary(ctx)
	if err != nil {
		return fmt.Errorf("resumen: %w", err)
	}
	printSummary(sess, summary)

	if replenish {
		suggestions, err := workflow.NewReplenishmentWorkflow(repo, repo).Suggestions(ctx)
		if err != nil {
			return err
		}
		printSuggestions(suggestions)
	}
	if pdfDir == "" {
		return nil
	}
	return exportPendingOrders(ctx, repo, pdfDir, log)
}

func printSuggestions(suggestions []workflow.Suggestion) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "\n#\tProducto\tStock\tPedir\tProveedor\tCoste")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\t%s\n", s.Priority, s.Item.ProductName,
			s.Item.Quantity, s.Item.Unit, s.SuggestedQty, s.Supplier, pdf.FormatMoney(s.EstimatedCost))
	}
}

func printSummary(sess *session.Session, s *entity.DashboardSummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	u := sess.CurrentUser()
	fmt.Fprintf(w, "Backend\t%s\n", sess.Repository().Info())
	fmt.Fprintf(w, "Usuario\t%s (%s)\n", u.Username, u.Role)
	fmt.Fprintf(w, "Ingresos\t%s\n", pdf.FormatMoney(s.TotalRevenue))
	fmt.Fprintf(w, "Gastos\t%s\n", pdf.FormatMoney(s.TotalExpenses))
	fmt.Fprintf(w, "Beneficio neto\t%s\n", pdf.FormatMoney(s.NetProfit))
	fmt.Fprintf(w, "Transacciones\t%d\n", s.TransactionCount)
	fmt.Fprintf(w, "Empleados activos\t%d\n", s.EmployeeCount)
	fmt.Fprintf(w, "Stock bajo\t%d\n", s.LowStockItemsCount)
	fmt.Fprintf(w, "Facturas pendientes\t%d\n", s.PendingInvoicesCount)
	for _, c := range s.ExpensesByCategory {
		fmt.Fprintf(w, "  %s\t%s (%s%%)\n", c.Category, pdf.FormatMoney(c.Amount), c.Percentage.StringFixed(1))
	}
}

func exportPendingOrders(ctx context.Context, repo repository.Repository, dir string, log *logger.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear %s: %w", dir, err)
	}
	orders, err := repo.ListOrders(ctx, repository.OrderFilter{Status: entity.OrderStatusPending})
	if err != nil {
		return fmt.Errorf("listar pedidos: %w", err)
	}
	docs := workflow.NewDocumentWorkflow(repo, repo, pdf.NewMarotoPDFGenerator(pdf.DefaultIssuer))
	for _, o := range orders {
		out, name, err := docs.OrderPDF(ctx, o)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		log.Info().Str("file", path).Msg("pedido exportado")
	}
	return nil
}
