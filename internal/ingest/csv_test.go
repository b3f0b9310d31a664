package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCheatsheet(t *testing.T) {
	t.Run("заголовок пропускается, имя и команда обрезаются", func(t *testing.T) {
		input := "name,position,team,byeWeek,price\n" +
			"Josh Allen ,QB, BUF,7,52\n" +
			"\"Harrison Butker\",K,KC,10,1\n"

		entries, err := ReadCheatsheet(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, ValueEntry{Name: "Josh Allen", Position: "QB", Team: "BUF", ByeWeek: 7, Price: 52}, entries[0])
		assert.Equal(t, "Harrison Butker", entries[1].Name)
		assert.Equal(t, 1, entries[1].Price)
	})

	t.Run("некорректная цена", func(t *testing.T) {
		input := "name,position,team,byeWeek,price\nJosh Allen,QB,BUF,7,lots\n"

		_, err := ReadCheatsheet(strings.NewReader(input))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("неверное число колонок", func(t *testing.T) {
		input := "name,position,team,byeWeek,price\nJosh Allen,QB,BUF\n"

		_, err := ReadCheatsheet(strings.NewReader(input))

		assert.Error(t, err)
	})

	t.Run("пустой файл", func(t *testing.T) {
		_, err := ReadCheatsheet(strings.NewReader(""))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing header row")
	})
}

func TestReadTeams(t *testing.T) {
	input := "name,owner\nField of Dreams, Blaine Wilson\nHungry Dogs,Michael Polt\n"

	entries, err := ReadTeams(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []TeamEntry{
		{Name: "Field of Dreams", Owner: "Blaine Wilson"},
		{Name: "Hungry Dogs", Owner: "Michael Polt"},
	}, entries)
}
