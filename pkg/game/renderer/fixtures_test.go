package renderer

// Expected renderings of a 6x5 grid
const (
	mazeAllWalls = `┏━━━━━━┳━━━━━━┳━━━━━━┳━━━━━━┳━━━━━━┳━━━━━━┓
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┣━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━┫
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┣━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━┫
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┣━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━┫
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┣━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━╋━━━━━━┫
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃  XX  ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┗━━━━━━┻━━━━━━┻━━━━━━┻━━━━━━┻━━━━━━┻━━━━━━┛`

	mazeNoWalls = `┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃                                         ┃
┃                                         ┃
┃                                         ┃
┃      ▪      ▪      ▪      ▪      ▪      ┃
┃                                         ┃
┃                                         ┃
┃                                         ┃
┃      ▪      ▪      ▪      ▪      ▪      ┃
┃                                         ┃
┃                                         ┃
┃                                         ┃
┃      ▪      ▪      ▪      ▪      ▪      ┃
┃                                         ┃
┃                                         ┃
┃                                         ┃
┃      ▪      ▪      ▪      ▪      ▪      ┃
┃                                         ┃
┃                                         ┃
┃                                         ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛`

	mazeSomeWalls = `┏━━━━━━┳━━━━━━┳━━━━━━┳━━━━━━┳━━━━━━┳━━━━━━┓
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┗━━━━━━┛      ┗━━━━━━┛      ┗━━━━━━┫
┃                                         ┃
┃                                         ┃
┃                                         ┃
┃      ╻      ╻      ╻      ╻      ╻      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┣━━━━━━┫      ┣━━━━━━┫      ┣━━━━━━┫
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┃      ┃      ┃      ┃      ┃      ┃
┃      ┗━━━━━━┛      ┗━━━━━━┛      ┗━━━━━━┫
┃                                         ┃
┃                                         ┃
┃                                         ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛`

	mapUncollapsed = `┏━━━━━━━┳━━━━━━━┳━━━━━━━┳━━━━━━━┳━━━━━━━┳━━━━━━━┓
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃- 256 -┃
┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃  -    ┃
┗━━━━━━━┻━━━━━━━┻━━━━━━━┻━━━━━━━┻━━━━━━━┻━━━━━━━┛`

	mapCollapsed = `┏━━━━━━━┳━━━━━━━┳━━━━━━━┳━━━━━━━┳━━━━━━━┳━━━━━━━┓
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┣━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━╋━━━━━━━┫
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃W #   W┃
┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃  W    ┃
┗━━━━━━━┻━━━━━━━┻━━━━━━━┻━━━━━━━┻━━━━━━━┻━━━━━━━┛`
)
