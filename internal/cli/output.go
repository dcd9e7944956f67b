package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	jsonMode bool
	w        io.Writer // stdout для данных
	errW     io.Writer // stderr для сообщений
}

// NewOutput создаёт Output поверх stdout/stderr.
// Если jsonMode=true, данные выводятся в JSON.
func NewOutput(jsonMode bool) *Output {
	return NewOutputTo(jsonMode, os.Stdout, os.Stderr)
}

// NewOutputTo создаёт Output с явными writer'ами.
func NewOutputTo(jsonMode bool, w, errW io.Writer) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        w,
		errW:     errW,
	}
}

// Print выводит данные: таблицу или JSON в зависимости от режима.
func (o *Output) Print(headers []string, rows [][]string, jsonData any) {
	if o.jsonMode {
		o.JSON(jsonData)
		return
	}
	o.Table(headers, rows)
}

// PrintItems выводит позиции меню.
func (o *Output) PrintItems(items []MenuItem, jsonData any) {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = itemRow(item)
	}
	o.Print(itemHeaders, rows, jsonData)
}

// Table выводит данные в виде таблицы через tabwriter.
func (o *Output) Table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

// JSON выводит данные в формате JSON с отступами.
func (o *Output) JSON(v any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Error выводит сообщение об ошибке в stderr.
// Для ошибок валидации каждое поле печатается отдельной строкой.
func (o *Output) Error(err error) {
	apiErr, ok := err.(*APIError)
	if !ok || len(apiErr.Errors) == 0 {
		fmt.Fprintln(o.errW, "Error: "+err.Error())
		return
	}

	fmt.Fprintln(o.errW, "Error: "+apiErr.Message)
	for _, fe := range apiErr.Errors {
		fmt.Fprintf(o.errW, "  %s: %s\n", fe.Path, fe.Msg)
	}
}

var itemHeaders = []string{"ID", "NAME", "CATEGORY", "PRICE", "AVAILABLE", "INGREDIENTS"}

func itemRow(item MenuItem) []string {
	return []string{
		strconv.Itoa(item.ID),
		item.Name,
		item.Category,
		strconv.FormatFloat(item.Price, 'f', 2, 64),
		strconv.FormatBool(item.Available),
		strings.Join(item.Ingredients, ", "),
	}
}
