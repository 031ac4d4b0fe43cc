package users_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	users "github.com/dcgiraldo/users-api"
)

func present(v string) users.Attribute {
	return users.Attribute{Value: v, Set: true}
}

var absent = users.Attribute{}

func TestTidy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "No changes", in: "Diego Castillo", want: "Diego Castillo"},
		{name: "Leading and trailing", in: "  diego ", want: "diego"},
		{name: "Internal runs", in: "Diego   Castillo  Giraldo", want: "Diego Castillo Giraldo"},
		{name: "Tabs and newlines", in: "Diego\t\tCastillo\n Giraldo", want: "Diego Castillo Giraldo"},
		{name: "Empty", in: "", want: ""},
		{name: "Only whitespace", in: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := users.Tidy(tt.in)
			assert.Equal(t, tt.want, got)
			// idempotence
			assert.Equal(t, got, users.Tidy(got))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		attr    users.Attribute
		want    string
		wantErr bool
	}{
		{name: "Simple", attr: present("aleja"), want: "aleja"},
		{name: "Digits and hyphen", attr: present("0325-diego"), want: "0325-diego"},
		{name: "Trimmed", attr: present("  aleja "), want: "aleja"},
		{name: "Uppercase allowed", attr: present("Aleja"), want: "Aleja"},
		{name: "Max length", attr: present(strings.Repeat("a", 17)), want: strings.Repeat("a", 17)},
		{name: "Too short", attr: present("abc"), wantErr: true},
		{name: "Too long", attr: present(strings.Repeat("a", 18)), wantErr: true},
		{name: "Leading hyphen", attr: present("-aleja"), wantErr: true},
		{name: "Trailing hyphen", attr: present("aleja-"), wantErr: true},
		{name: "Illegal characters", attr: present("ale_ja"), wantErr: true},
		{name: "Empty", attr: present(""), wantErr: true},
		{name: "Missing", attr: absent, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := users.ValidateUsername(tt.attr)

			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "400", err.Status)
				assert.Equal(t, "/data/attributes/username", err.Source.Pointer)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		attr    users.Attribute
		want    string
		wantErr bool
	}{
		{name: "Hotmail", attr: present("aleja-rojas20@hotmail.com"), want: "aleja-rojas20@hotmail.com"},
		{name: "Dotted local part", attr: present("0325.diego@gmail.com"), want: "0325.diego@gmail.com"},
		{name: "Subdomain", attr: present("diego@mail.uni.edu"), want: "diego@mail.uni.edu"},
		{name: "Trimmed", attr: present(" diego@gmail.com "), want: "diego@gmail.com"},
		{name: "No TLD", attr: present("diego@gmail"), wantErr: true},
		{name: "No local part", attr: present("@gmail.com"), wantErr: true},
		{name: "Long TLD", attr: present("diego@site.technology"), wantErr: true},
		{name: "Spaces inside", attr: present("die go@gmail.com"), wantErr: true},
		{name: "Empty", attr: present(""), wantErr: true},
		{name: "Missing", attr: absent, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := users.ValidateEmail(tt.attr)

			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "/data/attributes/email", err.Source.Pointer)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		attr    users.Attribute
		want    string
		wantErr bool
	}{
		{name: "Two words", attr: present("Alejandra Rojas"), want: "Alejandra Rojas"},
		{name: "Accented letters", attr: present("Alejandra López"), want: "Alejandra López"},
		{name: "Collapsed whitespace", attr: present("Diego   Castillo"), want: "Diego Castillo"},
		{name: "Word too short", attr: present("Al Rojas"), wantErr: true},
		{name: "Word too long", attr: present("Alejandrarrr Rojas"), wantErr: true},
		{name: "Digits", attr: present("Alejandra 2ojas"), wantErr: true},
		{name: "Too long overall", attr: present("Alejandra Alejandra Alejandra Ale"), wantErr: true},
		{name: "Empty", attr: present("  "), wantErr: true},
		{name: "Missing", attr: absent, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := users.ValidateName(tt.attr)

			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "/data/attributes/name", err.Source.Pointer)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePasswords(t *testing.T) {
	tests := []struct {
		name     string
		password users.Attribute
		confirm  users.Attribute
		wantErrs int
	}{
		{name: "Valid pair", password: present("Abcdef1234"), confirm: present("Abcdef1234"), wantErrs: 0},
		{name: "Accented classes", password: present("ábcdefgH12"), confirm: present("ábcdefgH12"), wantErrs: 0},
		{name: "Max length", password: present("Abcdef1234567890123456789"), confirm: present("Abcdef1234567890123456789"), wantErrs: 0},
		{name: "Missing password", password: absent, confirm: present("Abcdef1234"), wantErrs: 1},
		{name: "Missing confirmation", password: present("Abcdef1234"), confirm: absent, wantErrs: 1},
		{name: "Both missing", password: absent, confirm: absent, wantErrs: 1},
		{name: "Too short", password: present("Abc123"), confirm: present("Abc123"), wantErrs: 1},
		{name: "Too long", password: present("Abcdef12345678901234567890"), confirm: present("Abcdef12345678901234567890"), wantErrs: 1},
		{name: "No digit", password: present("Abcdefghij"), confirm: present("Abcdefghij"), wantErrs: 1},
		{name: "No uppercase", password: present("abcdef1234"), confirm: present("abcdef1234"), wantErrs: 1},
		{name: "No lowercase", password: present("ABCDEF1234"), confirm: present("ABCDEF1234"), wantErrs: 1},
		{name: "Mismatch", password: present("Abcdef1234"), confirm: present("Abcdef1235"), wantErrs: 1},
		{name: "Empty violates everything", password: present(""), confirm: present(""), wantErrs: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := users.ValidatePasswords(tt.password, tt.confirm)

			require.Len(t, errs, tt.wantErrs)
			for _, err := range errs {
				assert.Equal(t, "400", err.Status)
				assert.Equal(t, "/data/attributes/password", err.Source.Pointer)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Nil(t, users.ValidatePassword(present("Abcdef1234")))

	err := users.ValidatePassword(absent)
	require.NotNil(t, err)
	assert.Equal(t, "/data/attributes/password", err.Source.Pointer)

	err = users.ValidatePassword(present("short"))
	require.NotNil(t, err)

	err = users.ValidatePassword(present("abcdefghij"))
	require.NotNil(t, err)
}
