package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitRow(line string) []string {
	return strings.Split(line, ";")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{name: "nil row", row: nil, want: false},
		{name: "empty row", row: []string{}, want: false},
		{name: "blank line", row: []string{""}, want: false},
		{name: "single field", row: []string{"trailing"}, want: false},
		{name: "two fields", row: []string{"1", "2"}, want: true},
		{name: "full row", row: splitRow("1;10,0;5,0;20,0;1,0;2,0;3,0;100;0,5;0,5;note"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.row))
		})
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		row  string
		conv DecimalConvention
		want Record
	}{
		{
			name: "comma decimals with comment",
			row:  "1;10,0;5,0;20,0;1,0;2,0;3,0;100;0,5;0,5;note",
			conv: CommaDecimal,
			want: Record{X: 10, Z: 20, RadiosityMin: 1, RadiosityCenter: 2, RadiosityMax: 3, Comment: "note"},
		},
		{
			name: "period decimals",
			row:  "7;1.25;0;-3.5;0.1;0.2;0.3;5000;1.000000;12.000000;",
			conv: PeriodDecimal,
			want: Record{X: 1.25, Z: -3.5, RadiosityMin: 0.1, RadiosityCenter: 0.2, RadiosityMax: 0.3},
		},
		{
			name: "comment absent",
			row:  "2;1,5;0;2,5;1;2;3;100;0,1;0,2",
			conv: CommaDecimal,
			want: Record{X: 1.5, Z: 2.5, RadiosityMin: 1, RadiosityCenter: 2, RadiosityMax: 3},
		},
		{
			name: "comment with delimiter is rejoined",
			row:  "3;1;0;2;1;2;3;100;0,1;0,2;moved light;retry",
			conv: CommaDecimal,
			want: Record{X: 1, Z: 2, RadiosityMin: 1, RadiosityCenter: 2, RadiosityMax: 3, Comment: "moved light;retry"},
		},
		{
			name: "unretained fields are not decoded",
			row:  "n/a;1;not a number;2;1;2;3;lots;slow;later;x",
			conv: CommaDecimal,
			want: Record{X: 1, Z: 2, RadiosityMin: 1, RadiosityCenter: 2, RadiosityMax: 3, Comment: "x"},
		},
		{
			name: "order violation is not a parse error",
			row:  "4;1;0;2;9;2;3;100;0,1;0,2;bad stats",
			conv: CommaDecimal,
			want: Record{X: 1, Z: 2, RadiosityMin: 9, RadiosityCenter: 2, RadiosityMax: 3, Comment: "bad stats"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(splitRow(tt.row), tt.conv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecord_InvalidNumber(t *testing.T) {
	row := splitRow("1;10,0;5,0;20,0;1,0;abc;3,0;100;0,5;0,5;note")

	_, err := ParseRecord(row, CommaDecimal)
	require.Error(t, err)

	var mfe *MalformedFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "radiosity_center", mfe.Field)
	assert.Equal(t, 5, mfe.Position)
	assert.Equal(t, "abc", mfe.Value)
	assert.ErrorIs(t, err, ErrMalformedField)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestParseRecord_WrongConvention(t *testing.T) {
	row := splitRow("1;10.5;5.0;20.5;1.0;2.0;3.0;100;0.5;0.5;note")

	_, err := ParseRecord(row, CommaDecimal)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseRecord_TooFewFields(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		wantPos   int
		wantField string
	}{
		{name: "two fields", row: "1;10,0", wantPos: 2, wantField: "bigbox_y"},
		{name: "stops before radiosity", row: "1;10,0;5,0;20,0;1,0", wantPos: 5, wantField: "radiosity_center"},
		{name: "missing time from start", row: "1;10,0;5,0;20,0;1,0;2,0;3,0;100;0,5", wantPos: 9, wantField: "time_from_start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(splitRow(tt.row), CommaDecimal)

			var mfe *MalformedFieldError
			require.True(t, errors.As(err, &mfe), "want *MalformedFieldError, got %v", err)
			assert.Equal(t, tt.wantPos, mfe.Position)
			assert.Equal(t, tt.wantField, mfe.Field)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.NotErrorIs(t, err, ErrInvalidNumber)
		})
	}
}

func TestRecordParser_CustomDelimiterRejoin(t *testing.T) {
	p := NewRecordParser(PeriodDecimal, ',')
	row := strings.Split("1,1.0,0,2.0,1,2,3,100,0.1,0.2,a,b", ",")

	rec, err := p.Parse(row)
	require.NoError(t, err)
	assert.Equal(t, "a,b", rec.Comment)
}
