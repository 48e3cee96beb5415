package decimal

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

func TestDecimal_Storage(t *testing.T) {
	tests := []struct {
		name string
		d    interface{ Storage() string }
		want string
	}{
		{"zero", Zero[D6](), "0"},
		{"one", One[D6](), "1"},
		{"half", MustParse[D6]("1.5"), "1.5"},
		{"percent", Percent[D6](50), "0.5"},
		{"smallest", raw6(1), "0.000001"},
		{"max D6", Max[D6](), maxD6},
		{"D9", MustParse[D9]("1.123456789"), "1.123456789"},
		{"D18", MustParse[D18]("1.123456789012345678"), "1.123456789012345678"},
		{"D0", Raw[D0](num.NewUint128(42)), "42"},
		{"D24 truncated", Raw[D24](u128("1500000000000000000000001")), "1.5"},
		{"D24 tiny", Raw[D24](num.NewUint128(1)), "0"},
		{"D24 digits", Raw[D24](u128("1123456789012345678999999")), "1.123456789012345678"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Storage(), tt.name)
	}
}

func TestDecimal_StorageCompatibility(t *testing.T) {
	for _, s := range []string{"0", "1", "1.5", "0.000001", "123456.654321", "340282366920938463463.374607"} {
		d6 := MustParse[D6](s)
		d9 := ToPrecision[D9](d6)
		d18 := ToPrecision[D18](d6)
		assert.Equal(t, d6.Storage(), d9.Storage(), s)
		assert.Equal(t, d6.Storage(), d18.Storage(), s)
	}
}

func TestParseStorage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			d6   string
			d9   string
			d18  string
			name string
		}{
			{"1.500000000000000000", "1500000", "1500000000", "1500000000000000000", "padded"},
			{"1.123000000000000000", "1123000", "1123000000", "1123000000000000000", "short"},
			{"1.123456789012345678", "1123456", "1123456789", "1123456789012345678", "truncated"},
			{"0.0000009", "0", "900", "900000000000", "below D6"},
			{"42", "42000000", "42000000000", "42000000000000000000", "integer"},
		}
		for _, tt := range tests {
			d6, err := ParseStorage[D6](tt.s)
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.d6, d6.Atomics().String(), tt.name)

			d9, err := ParseStorage[D9](tt.s)
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.d9, d9.Atomics().String(), tt.name)

			d18, err := ParseStorage[D18](tt.s)
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.d18, d18.Atomics().String(), tt.name)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":             {"", ErrParse},
			"letters":           {"abc", ErrParse},
			"negative":          {"-1", ErrParse},
			"format":            {"1.2.3", ErrParse},
			"fraction":          {"1.", ErrParse},
			"overflow":          {"340282366920938463463374607431769", ErrParse},
			"overflow fraction": {"340282366920938463463374607431768.9", ErrParse},
		}
		for name, tt := range tests {
			_, err := ParseStorage[D6](tt.s)
			assert.ErrorIs(t, err, tt.want, name)
			if err != nil {
				assert.Contains(t, err.Error(), "decoding decimal with 6 places", name)
			}
		}
	})
}

func TestParseStorage_Overflow(t *testing.T) {
	var d Decimal6
	err := json.Unmarshal([]byte(`"340282366920938463463374607431768.9"`), &d)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOverflow)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "overflow in decimal value", perr.Detail)
	assert.Equal(t, "Parse error: overflow in decimal value", ToHostError(err).Error())

	_, err = Parse[D6]("340282366920938463463374607431768.9")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecimal_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(MustParse[D6]("1.5"))
		require.NoError(t, err)
		assert.Equal(t, `"1.5"`, string(b))

		type position struct {
			Price Decimal6  `json:"price"`
			Rate  Decimal18 `json:"rate"`
			Fee   *Decimal9 `json:"fee,omitempty"`
		}
		b, err = json.Marshal(position{Price: MustParse[D6]("1.5"), Rate: Percent[D18](3)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":"1.5","rate":"0.03"}`, string(b))
	})

	t.Run("cross precision", func(t *testing.T) {
		b, err := json.Marshal(MustParse[D6]("1.5"))
		require.NoError(t, err)

		var d18 Decimal18
		require.NoError(t, json.Unmarshal(b, &d18))
		assert.Equal(t, "1500000000000000000", d18.Atomics().String())

		b, err = json.Marshal(MustParse[D18]("1.123456789012345678"))
		require.NoError(t, err)
		var d6 Decimal6
		require.NoError(t, json.Unmarshal(b, &d6))
		assert.Equal(t, "1123456", d6.Atomics().String())
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d Decimal6
		require.NoError(t, json.Unmarshal([]byte(`"0.000001"`), &d))
		assert.Equal(t, raw6(1), d)

		d = MustParse[D6]("7")
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.Equal(t, MustParse[D6]("7"), d)

		var v struct {
			Price Decimal6 `json:"price"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"price":"2.25"}`), &v))
		assert.Equal(t, MustParse[D6]("2.25"), v.Price)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			data string
			want error
		}{
			"number":            {`1.5`, ErrParse},
			"bool":              {`true`, ErrParse},
			"format":            {`"1.2.3"`, ErrParse},
			"letters":           {`"abc"`, ErrParse},
			"negative":          {`"-1"`, ErrParse},
			"overflow":          {`"340282366920938463463374607431769"`, ErrParse},
			"overflow fraction": {`"340282366920938463463374607431768.9"`, ErrParse},
		}
		for name, tt := range tests {
			var d Decimal6
			err := d.UnmarshalJSON([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want, name)
		}
	})
}

func TestDecimal_Text(t *testing.T) {
	b, err := MustParse[D9]("1.25").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.25", string(b))

	var d Decimal6
	require.NoError(t, d.UnmarshalText([]byte("1.1234567")))
	assert.Equal(t, MustParse[D6]("1.123456"), d)

	assert.ErrorIs(t, d.UnmarshalText([]byte("x")), ErrParse)
}

func TestDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"1.5", "1.5"},
			{[]byte("1.123456789"), "1.123456"},
			{int64(42), "42"},
			{int64(0), "0"},
		}
		for _, tt := range tests {
			var d Decimal6
			require.NoError(t, d.Scan(tt.value), "%v", tt.value)
			assert.Equal(t, tt.want, d.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			value any
			want  error
		}{
			"float":    {1.5, ErrConversion},
			"nil":      {nil, ErrConversion},
			"negative": {int64(-1), ErrConversion},
			"bool":     {true, ErrConversion},
			"string":   {"abc", ErrParse},
		}
		for name, tt := range tests {
			var d Decimal6
			assert.ErrorIs(t, d.Scan(tt.value), tt.want, name)
		}
	})

	t.Run("null", func(t *testing.T) {
		var n NullDecimal[D6]
		require.NoError(t, n.Scan(nil))
		assert.False(t, n.Valid)

		require.NoError(t, n.Scan("2.5"))
		assert.True(t, n.Valid)
		assert.Equal(t, MustParse[D6]("2.5"), n.Decimal)

		assert.ErrorIs(t, n.Scan(1.5), ErrConversion)
		assert.False(t, n.Valid)
		assert.True(t, n.Decimal.IsZero())
	})
}

func TestDecimal_Value(t *testing.T) {
	v, err := MustParse[D6]("1.5").Value()
	require.NoError(t, err)
	assert.Equal(t, "1.5", v)

	v, err = NullDecimal[D6]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NullDecimal[D6]{Decimal: One[D6](), Valid: true}.Value()
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestDecimal_SQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO prices").
		WithArgs("1.5", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT price, fee FROM prices").
		WillReturnRows(sqlmock.NewRows([]string{"price", "fee"}).
			AddRow("1.123456789012345678", nil).
			AddRow([]byte("0.5"), "0.25"))

	_, err = db.Exec("INSERT INTO prices (price, fee) VALUES (?, ?)", MustParse[D6]("1.5"), NullDecimal[D6]{})
	require.NoError(t, err)

	rows, err := db.Query("SELECT price, fee FROM prices")
	require.NoError(t, err)
	defer rows.Close()

	var (
		prices []Decimal6
		fees   []NullDecimal[D6]
	)
	for rows.Next() {
		var (
			price Decimal6
			fee   NullDecimal[D6]
		)
		require.NoError(t, rows.Scan(&price, &fee))
		prices = append(prices, price)
		fees = append(fees, fee)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []Decimal6{MustParse[D6]("1.123456"), MustParse[D6]("0.5")}, prices)
	assert.Equal(t, []NullDecimal[D6]{{}, {Decimal: MustParse[D6]("0.25"), Valid: true}}, fees)
	assert.NoError(t, mock.ExpectationsWereMet())
}
